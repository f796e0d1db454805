// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ir

// Method is a declared method with an optional body. Abstract methods
// have no body and never appear as dispatch targets.
type Method struct {
	Class    *Class
	Name     string
	Params   []*Var
	Ret      Type
	Abstract bool

	stmts      []Stmt
	returnVars []*Var
	results    map[string]any
}

// NewMethod declares a method on a class. The body is attached separately
// with SetBody; abstract methods never receive one.
func NewMethod(class *Class, name string, params []*Var, ret Type, abstract bool) *Method {
	m := &Method{
		Class:    class,
		Name:     name,
		Params:   params,
		Ret:      ret,
		Abstract: abstract,
		results:  map[string]any{},
	}
	class.declare(m)
	return m
}

// SetBody attaches the statement list to the method. Statement indices
// must be dense and match their position in the slice.
func (m *Method) SetBody(stmts []Stmt) {
	m.stmts = stmts
	m.returnVars = nil
	for _, s := range stmts {
		if r, ok := s.(*Return); ok && r.Var != nil {
			m.returnVars = append(m.returnVars, r.Var)
		}
	}
}

// Stmts returns the method body. The slice is owned by the method and
// must not be modified.
func (m *Method) Stmts() []Stmt { return m.stmts }

// ReturnVars returns the variables returned by the method's return
// statements, in body order.
func (m *Method) ReturnVars() []*Var { return m.returnVars }

// ParamTypes returns the types of the formal parameters.
func (m *Method) ParamTypes() []Type {
	ts := make([]Type, len(m.Params))
	for i, p := range m.Params {
		ts[i] = p.Type
	}
	return ts
}

// Subsignature returns the method name with parameter and return types,
// excluding the declaring class. Dispatch matches on subsignatures.
func (m *Method) Subsignature() string {
	return subsignature(m.Name, m.ParamTypes(), m.Ret)
}

// Ref returns a MethodRef naming this method on its declaring class.
func (m *Method) Ref() *MethodRef {
	return &MethodRef{Class: m.Class, Name: m.Name, Params: m.ParamTypes(), Ret: m.Ret}
}

// GetResult returns the analysis result previously stored under id.
func (m *Method) GetResult(id string) (any, bool) {
	r, ok := m.results[id]
	return r, ok
}

// StoreResult records an analysis result on the method under id,
// replacing any previous result for the same id.
func (m *Method) StoreResult(id string, result any) {
	m.results[id] = result
}

func (m *Method) String() string {
	return m.Class.Name + "." + m.Subsignature()
}
