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

import "fmt"

// Label is a forward-referencable position in a method body under
// construction. Labels are created with Builder.NewLabel and bound to the
// next emitted statement with Builder.Bind.
type Label int

// SwitchCase pairs a case label value with its branch target for
// Builder.Switch.
type SwitchCase struct {
	Value  int32
	Target Label
}

// Builder assembles a method body statement by statement. Indices are
// assigned densely in emission order and each statement's line number is
// its index plus one, so every built statement has a valid source line.
type Builder struct {
	method *Method
	stmts  []Stmt
	labels []int
}

const unboundLabel = -1

// NewBuilder starts building the body of the given method.
func NewBuilder(m *Method) *Builder {
	return &Builder{method: m}
}

// Local declares a fresh local variable in the method being built.
func (b *Builder) Local(name string, t Type) *Var {
	return &Var{Name: name, Type: t}
}

// NewLabel creates an unbound label.
func (b *Builder) NewLabel() Label {
	b.labels = append(b.labels, unboundLabel)
	return Label(len(b.labels) - 1)
}

// Bind binds the label to the next statement emitted.
func (b *Builder) Bind(l Label) {
	b.labels[l] = len(b.stmts)
}

// Assign emits lhs = rhs.
func (b *Builder) Assign(lhs *Var, rhs Exp) *AssignStmt {
	s := &AssignStmt{stmtBase: b.next(), LHS: lhs, RHS: rhs}
	b.stmts = append(b.stmts, s)
	return s
}

// AssignInt emits lhs = c for an integer literal c.
func (b *Builder) AssignInt(lhs *Var, c int32) *AssignStmt {
	return b.Assign(lhs, &IntLiteral{Value: c})
}

// Copy emits lhs = rhs for a variable rhs.
func (b *Builder) Copy(lhs, rhs *Var) *AssignStmt {
	return b.Assign(lhs, &VarExp{Var: rhs})
}

// If emits a conditional branch to target, falling through otherwise.
// The target index is patched when Finish runs.
func (b *Builder) If(cond *ConditionExp, target Label) *If {
	s := &If{stmtBase: b.next(), Cond: cond, Target: int(target)}
	b.stmts = append(b.stmts, s)
	return s
}

// Goto emits an unconditional branch to target.
func (b *Builder) Goto(target Label) *Goto {
	s := &Goto{stmtBase: b.next(), Target: int(target)}
	b.stmts = append(b.stmts, s)
	return s
}

// Switch emits a switch on v with the given cases and default target.
func (b *Builder) Switch(v *Var, cases []SwitchCase, def Label) *SwitchStmt {
	cts := make([]CaseTarget, len(cases))
	for i, c := range cases {
		cts[i] = CaseTarget{Value: c.Value, Target: int(c.Target)}
	}
	s := &SwitchStmt{stmtBase: b.next(), Var: v, Cases: cts, DefaultTarget: int(def)}
	b.stmts = append(b.stmts, s)
	return s
}

// Invoke emits a call statement; lhs may be nil.
func (b *Builder) Invoke(lhs *Var, exp *InvokeExp) *Invoke {
	s := &Invoke{stmtBase: b.next(), LHS: lhs, Exp: exp}
	b.stmts = append(b.stmts, s)
	return s
}

// Call emits lhs = call of the given method with args; lhs may be nil.
// The dispatch kind is static when base is nil, interface when the
// callee is declared on an interface, and virtual otherwise.
func (b *Builder) Call(lhs *Var, callee *Method, base *Var, args ...*Var) *Invoke {
	kind := CallVirtual
	if base == nil {
		kind = CallStatic
	} else if callee.Class.IsInterface() {
		kind = CallInterface
	}
	return b.Invoke(lhs, &InvokeExp{Kind: kind, Ref: callee.Ref(), Base: base, Args: args})
}

// Return emits a return statement; v may be nil for void.
func (b *Builder) Return(v *Var) *Return {
	s := &Return{stmtBase: b.next(), Var: v}
	b.stmts = append(b.stmts, s)
	return s
}

// Nop emits a no-op statement.
func (b *Builder) Nop() *Nop {
	s := &Nop{stmtBase: b.next()}
	b.stmts = append(b.stmts, s)
	return s
}

// Finish patches branch targets and attaches the body to the method.
// It panics on an unbound label; that is a bug in the caller, not input.
func (b *Builder) Finish() {
	resolve := func(l int) int {
		idx := b.labels[l]
		if idx == unboundLabel {
			panic(fmt.Sprintf("ir: unbound label %d in %s", l, b.method))
		}
		return idx
	}
	for _, s := range b.stmts {
		switch s := s.(type) {
		case *If:
			s.Target = resolve(s.Target)
		case *Goto:
			s.Target = resolve(s.Target)
		case *SwitchStmt:
			for i := range s.Cases {
				s.Cases[i].Target = resolve(s.Cases[i].Target)
			}
			s.DefaultTarget = resolve(s.DefaultTarget)
		}
	}
	b.method.SetBody(b.stmts)
}

func (b *Builder) next() stmtBase {
	i := len(b.stmts)
	return stmtBase{index: i, line: i + 1}
}
