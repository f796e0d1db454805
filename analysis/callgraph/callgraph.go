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

// Package callgraph builds a call graph over the methods reachable from
// a program entry point, resolving call sites with class hierarchy
// analysis. Each dispatch kind resolves against the declared receiver
// class; virtual and interface calls fan out over the subtype cone.
package callgraph

import (
	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

// ID identifies the call graph construction analysis.
const ID = "callgraph"

// Edge records one resolved call: the call site, the method containing
// it, and one target.
type Edge struct {
	CallSite *ir.Invoke
	Caller   *ir.Method
	Callee   *ir.Method
}

// Graph is a call graph restricted to the methods reachable from the
// entry. It is immutable once built.
type Graph struct {
	entry   *ir.Method
	methods []*ir.Method
	reach   map[*ir.Method]bool

	edges     []Edge
	callees   map[*ir.Invoke][]*ir.Method
	callers   map[*ir.Method][]Edge
	callSites map[*ir.Method][]*ir.Invoke
}

func newGraph(entry *ir.Method) *Graph {
	return &Graph{
		entry:     entry,
		reach:     map[*ir.Method]bool{},
		callees:   map[*ir.Invoke][]*ir.Method{},
		callers:   map[*ir.Method][]Edge{},
		callSites: map[*ir.Method][]*ir.Invoke{},
	}
}

func (g *Graph) addMethod(m *ir.Method) bool {
	if g.reach[m] {
		return false
	}
	g.reach[m] = true
	g.methods = append(g.methods, m)
	return true
}

func (g *Graph) addEdge(e Edge) {
	g.edges = append(g.edges, e)
	g.callees[e.CallSite] = append(g.callees[e.CallSite], e.Callee)
	g.callers[e.Callee] = append(g.callers[e.Callee], e)
}

// Entry returns the entry method.
func (g *Graph) Entry() *ir.Method { return g.entry }

// ReachableMethods returns the reachable methods in discovery order,
// entry first.
func (g *Graph) ReachableMethods() []*ir.Method { return g.methods }

// Contains reports whether m is reachable.
func (g *Graph) Contains(m *ir.Method) bool { return g.reach[m] }

// CalleesOf returns the resolved targets of the call site, in resolution
// order.
func (g *Graph) CalleesOf(call *ir.Invoke) []*ir.Method { return g.callees[call] }

// CallersOf returns the edges whose target is m.
func (g *Graph) CallersOf(m *ir.Method) []Edge { return g.callers[m] }

// CallSitesIn returns the call sites appearing in m's body, in body
// order.
func (g *Graph) CallSitesIn(m *ir.Method) []*ir.Invoke { return g.callSites[m] }

// Edges returns every resolved edge.
func (g *Graph) Edges() []Edge { return g.edges }
