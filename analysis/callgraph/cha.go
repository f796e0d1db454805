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

package callgraph

import (
	"github.com/oleiade/lane"

	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

// BuildCHA constructs the call graph of the world's entry method using
// class hierarchy analysis. Methods are discovered breadth-first; a
// method's call sites are resolved once, when the method is first
// reached.
func BuildCHA(w *ir.World) *Graph {
	g := newGraph(w.Entry)
	wl := lane.NewQueue()
	wl.Enqueue(w.Entry)
	for !wl.Empty() {
		m := wl.Dequeue().(*ir.Method)
		if !g.addMethod(m) {
			continue
		}
		for _, s := range m.Stmts() {
			call, ok := s.(*ir.Invoke)
			if !ok {
				continue
			}
			g.callSites[m] = append(g.callSites[m], call)
			for _, callee := range Resolve(w.Hierarchy, call.Exp) {
				g.addEdge(Edge{CallSite: call, Caller: m, Callee: callee})
				wl.Enqueue(callee)
			}
		}
	}
	return g
}

// Resolve returns the possible targets of the invocation under class
// hierarchy analysis. Static and special calls dispatch once against the
// declared class; virtual and interface calls dispatch from every
// subtype of the declared class. Dynamic call sites resolve to nothing.
func Resolve(h *ir.Hierarchy, e *ir.InvokeExp) []*ir.Method {
	subsig := e.Ref.Subsignature()
	switch e.Kind {
	case ir.CallStatic, ir.CallSpecial:
		if t := Dispatch(e.Ref.Class, subsig); t != nil {
			return []*ir.Method{t}
		}
		return nil
	case ir.CallVirtual, ir.CallInterface:
		var targets []*ir.Method
		seen := map[*ir.Method]bool{}
		for _, c := range subtypesOf(h, e.Ref.Class) {
			t := Dispatch(c, subsig)
			if t != nil && !seen[t] {
				seen[t] = true
				targets = append(targets, t)
			}
		}
		return targets
	default:
		return nil
	}
}

// Dispatch finds the method a receiver of class c runs for the given
// subsignature: the first non-abstract declaration found walking the
// superclass chain, or nil when none exists.
func Dispatch(c *ir.Class, subsig string) *ir.Method {
	for ; c != nil; c = c.Super {
		if m := c.DeclaredMethod(subsig); m != nil && !m.Abstract {
			return m
		}
	}
	return nil
}

// subtypesOf returns root and all its transitive subtypes: subclasses of
// a class, subinterfaces and implementors of an interface, and the
// subclasses of every implementor.
func subtypesOf(h *ir.Hierarchy, root *ir.Class) []*ir.Class {
	var cone []*ir.Class
	seen := map[*ir.Class]bool{root: true}
	wl := lane.NewQueue()
	wl.Enqueue(root)
	push := func(cs []*ir.Class) {
		for _, c := range cs {
			if !seen[c] {
				seen[c] = true
				wl.Enqueue(c)
			}
		}
	}
	for !wl.Empty() {
		c := wl.Dequeue().(*ir.Class)
		cone = append(cone, c)
		if c.IsInterface() {
			push(h.DirectSubinterfacesOf(c))
			push(h.DirectImplementorsOf(c))
		} else {
			push(h.DirectSubclassesOf(c))
		}
	}
	return cone
}
