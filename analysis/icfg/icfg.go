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

// Package icfg stitches the per-method CFGs of the reachable methods
// into one interprocedural flow graph. Call sites gain call edges to
// callee entries and their fall-through edges are reclassified as
// call-to-return edges; callee exits gain return edges back to the
// return sites.
package icfg

import (
	"fmt"

	"github.com/awslabs/ar-bc-tools/analysis/callgraph"
	"github.com/awslabs/ar-bc-tools/analysis/cfg"
	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

// ID identifies the ICFG construction analysis.
const ID = "icfg"

// EdgeKind classifies interprocedural edges.
type EdgeKind int

const (
	// EdgeNormal is an intraprocedural edge not leaving a call site.
	EdgeNormal EdgeKind = iota

	// EdgeCallToReturn is the intraprocedural edge from a call site to
	// its return site, bypassing the callee.
	EdgeCallToReturn

	// EdgeCall connects a call site to a callee's entry.
	EdgeCall

	// EdgeReturn connects a callee's exit to a return site of one of its
	// call sites.
	EdgeReturn
)

var edgeKindNames = [...]string{"normal", "call-to-return", "call", "return"}

func (k EdgeKind) String() string { return edgeKindNames[k] }

// Edge is one interprocedural flow edge. Callee is set on call edges;
// CallSite and ReturnVars are set on return edges.
type Edge struct {
	Kind   EdgeKind
	Source ir.Stmt
	Target ir.Stmt

	Callee     *ir.Method
	CallSite   *ir.Invoke
	ReturnVars []*ir.Var
}

// ICFG is the interprocedural flow graph over the methods reachable in
// a call graph. It is immutable once built.
type ICFG struct {
	cg *callgraph.Graph

	nodes    []ir.Stmt
	inEdges  map[ir.Stmt][]*Edge
	outEdges map[ir.Stmt][]*Edge
	methodOf map[ir.Stmt]*ir.Method
	entry    ir.Stmt
}

// Build constructs the ICFG of the call graph's reachable methods. It
// fails when a resolved call edge would connect a call site to a callee
// with a different parameter count.
func Build(cg *callgraph.Graph) (*ICFG, error) {
	g := &ICFG{
		cg:       cg,
		inEdges:  map[ir.Stmt][]*Edge{},
		outEdges: map[ir.Stmt][]*Edge{},
		methodOf: map[ir.Stmt]*ir.Method{},
	}
	cfgs := map[*ir.Method]*cfg.CFG{}
	for _, m := range cg.ReachableMethods() {
		c := cfg.Of(m)
		cfgs[m] = c
		for _, n := range c.Nodes() {
			g.nodes = append(g.nodes, n)
			g.methodOf[n] = m
		}
	}
	g.entry = cfgs[cg.Entry()].Entry()

	for _, m := range cg.ReachableMethods() {
		c := cfgs[m]
		for _, n := range c.Nodes() {
			kind := EdgeNormal
			if _, ok := n.(*ir.Invoke); ok {
				kind = EdgeCallToReturn
			}
			for _, s := range c.Succs(n) {
				g.addEdge(&Edge{Kind: kind, Source: n, Target: s})
			}
		}
		for _, call := range cg.CallSitesIn(m) {
			for _, callee := range cg.CalleesOf(call) {
				if len(call.Exp.Args) != len(callee.Params) {
					return nil, fmt.Errorf("call %v: %d arguments for %d parameters of %v",
						call, len(call.Exp.Args), len(callee.Params), callee)
				}
				cc := cfgs[callee]
				g.addEdge(&Edge{Kind: EdgeCall, Source: call, Target: cc.Entry(), Callee: callee})
				for _, ret := range c.Succs(call) {
					g.addEdge(&Edge{
						Kind:       EdgeReturn,
						Source:     cc.Exit(),
						Target:     ret,
						CallSite:   call,
						ReturnVars: callee.ReturnVars(),
					})
				}
			}
		}
	}
	return g, nil
}

func (g *ICFG) addEdge(e *Edge) {
	g.outEdges[e.Source] = append(g.outEdges[e.Source], e)
	g.inEdges[e.Target] = append(g.inEdges[e.Target], e)
}

// Nodes returns every node, grouped by method in reachability order.
func (g *ICFG) Nodes() []ir.Stmt { return g.nodes }

// GlobalEntry returns the entry node of the entry method.
func (g *ICFG) GlobalEntry() ir.Stmt { return g.entry }

// EntryMethod returns the entry method of the underlying call graph.
func (g *ICFG) EntryMethod() *ir.Method { return g.cg.Entry() }

// InEdgesOf returns the edges arriving at n.
func (g *ICFG) InEdgesOf(n ir.Stmt) []*Edge { return g.inEdges[n] }

// OutEdgesOf returns the edges leaving n.
func (g *ICFG) OutEdgesOf(n ir.Stmt) []*Edge { return g.outEdges[n] }

// MethodOf returns the method whose body contains n.
func (g *ICFG) MethodOf(n ir.Stmt) *ir.Method { return g.methodOf[n] }

// CallGraph returns the call graph the ICFG was built from.
func (g *ICFG) CallGraph() *callgraph.Graph { return g.cg }
