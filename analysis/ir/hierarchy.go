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

// Hierarchy answers subtype queries over a fixed set of classes. It is
// immutable once built: the reverse edges (subclasses, subinterfaces,
// implementors) are computed eagerly by BuildHierarchy.
type Hierarchy struct {
	classes map[string]*Class

	subclasses    map[*Class][]*Class
	subinterfaces map[*Class][]*Class
	implementors  map[*Class][]*Class
}

// BuildHierarchy indexes the given classes and computes the reverse
// subtype edges. Every superclass and superinterface referenced by a
// class must itself be in the slice.
func BuildHierarchy(classes []*Class) *Hierarchy {
	h := &Hierarchy{
		classes:       make(map[string]*Class, len(classes)),
		subclasses:    map[*Class][]*Class{},
		subinterfaces: map[*Class][]*Class{},
		implementors:  map[*Class][]*Class{},
	}
	for _, c := range classes {
		h.classes[c.Name] = c
	}
	for _, c := range classes {
		if c.Super != nil {
			h.subclasses[c.Super] = append(h.subclasses[c.Super], c)
		}
		for _, itf := range c.Interfaces {
			if c.IsInterface() {
				h.subinterfaces[itf] = append(h.subinterfaces[itf], c)
			} else {
				h.implementors[itf] = append(h.implementors[itf], c)
			}
		}
	}
	return h
}

// Class returns the class with the given name, or nil.
func (h *Hierarchy) Class(name string) *Class { return h.classes[name] }

// Classes returns all classes in the hierarchy.
func (h *Hierarchy) Classes() []*Class {
	cs := make([]*Class, 0, len(h.classes))
	for _, c := range h.classes {
		cs = append(cs, c)
	}
	return cs
}

// DirectSubclassesOf returns the classes whose direct superclass is c.
func (h *Hierarchy) DirectSubclassesOf(c *Class) []*Class { return h.subclasses[c] }

// DirectSubinterfacesOf returns the interfaces that directly extend the
// interface c.
func (h *Hierarchy) DirectSubinterfacesOf(c *Class) []*Class { return h.subinterfaces[c] }

// DirectImplementorsOf returns the classes that directly implement the
// interface c.
func (h *Hierarchy) DirectImplementorsOf(c *Class) []*Class { return h.implementors[c] }
