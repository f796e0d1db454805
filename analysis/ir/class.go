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

// Class is a loaded class or interface. Super is nil for the hierarchy
// root. Interface classes list their direct superinterfaces in Interfaces;
// ordinary classes list the interfaces they implement directly.
type Class struct {
	Name       string
	Super      *Class
	Interfaces []*Class

	isInterface bool
	isAbstract  bool
	methods     map[string]*Method
}

// NewClass creates a class with the given name and superclass.
func NewClass(name string, super *Class) *Class {
	return &Class{Name: name, Super: super, methods: map[string]*Method{}}
}

// NewInterface creates an interface with the given name and direct
// superinterfaces.
func NewInterface(name string, supers ...*Class) *Class {
	return &Class{Name: name, Interfaces: supers, isInterface: true, isAbstract: true, methods: map[string]*Method{}}
}

// NewAbstractClass creates an abstract class with the given name and
// superclass.
func NewAbstractClass(name string, super *Class) *Class {
	return &Class{Name: name, Super: super, isAbstract: true, methods: map[string]*Method{}}
}

// IsInterface reports whether the class is an interface.
func (c *Class) IsInterface() bool { return c.isInterface }

// IsAbstract reports whether the class is abstract. Interfaces are
// abstract.
func (c *Class) IsAbstract() bool { return c.isAbstract }

// DeclaredMethod returns the method declared directly on this class with
// the given subsignature, or nil. Inherited methods are not consulted;
// dispatch walks the superclass chain explicitly.
func (c *Class) DeclaredMethod(subsig string) *Method {
	return c.methods[subsig]
}

// DeclaredMethods returns all methods declared directly on this class.
func (c *Class) DeclaredMethods() []*Method {
	ms := make([]*Method, 0, len(c.methods))
	for _, m := range c.methods {
		ms = append(ms, m)
	}
	return ms
}

func (c *Class) declare(m *Method) {
	c.methods[m.Subsignature()] = m
}

func (c *Class) String() string { return c.Name }
