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

package icfg

import (
	"testing"

	"github.com/awslabs/ar-bc-tools/analysis/callgraph"
	"github.com/awslabs/ar-bc-tools/analysis/cfg"
	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

func buildWorld(t *testing.T, argCount int) (*ir.World, *ir.Invoke, *ir.Method) {
	t.Helper()
	c := ir.NewClass("Main", nil)
	p := &ir.Var{Name: "p", Type: ir.TypeInt}
	callee := ir.NewMethod(c, "callee", []*ir.Var{p}, ir.TypeInt, false)
	{
		b := ir.NewBuilder(callee)
		b.Return(p)
		b.Finish()
	}
	entry := ir.NewMethod(c, "main", nil, ir.TypeVoid, false)
	b := ir.NewBuilder(entry)
	x := b.Local("x", ir.TypeInt)
	r := b.Local("r", ir.TypeInt)
	b.AssignInt(x, 1)
	args := make([]*ir.Var, argCount)
	for i := range args {
		args[i] = x
	}
	call := b.Invoke(r, &ir.InvokeExp{Kind: ir.CallStatic, Ref: callee.Ref(), Args: args})
	b.Return(nil)
	b.Finish()

	h := ir.BuildHierarchy([]*ir.Class{c})
	return ir.NewWorld(h, entry), call, callee
}

func edgesByKind(edges []*Edge) map[EdgeKind]int {
	counts := map[EdgeKind]int{}
	for _, e := range edges {
		counts[e.Kind]++
	}
	return counts
}

func TestBuildConnectsCallAndReturn(t *testing.T) {
	w, call, callee := buildWorld(t, 1)
	g, err := Build(callgraph.BuildCHA(w))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	out := edgesByKind(g.OutEdgesOf(call))
	if out[EdgeCall] != 1 || out[EdgeCallToReturn] != 1 {
		t.Fatalf("call site out edges = %v, want one call and one call-to-return", out)
	}

	calleeCFG := cfg.Of(callee)
	var callEdge *Edge
	for _, e := range g.OutEdgesOf(call) {
		if e.Kind == EdgeCall {
			callEdge = e
		}
	}
	if callEdge.Target != calleeCFG.Entry() {
		t.Error("call edge should target the callee entry")
	}
	if callEdge.Callee != callee {
		t.Errorf("call edge callee = %v, want %v", callEdge.Callee, callee)
	}

	var returnEdge *Edge
	for _, e := range g.OutEdgesOf(calleeCFG.Exit()) {
		if e.Kind == EdgeReturn {
			returnEdge = e
		}
	}
	if returnEdge == nil {
		t.Fatal("callee exit has no return edge")
	}
	if returnEdge.CallSite != call {
		t.Error("return edge should reference the call site")
	}
	if len(returnEdge.ReturnVars) != 1 {
		t.Errorf("return edge carries %d return vars, want 1", len(returnEdge.ReturnVars))
	}
	// The return edge lands on the return site, the call site's
	// intraprocedural successor.
	entryCFG := cfg.Of(w.Entry)
	succs := entryCFG.Succs(call)
	if len(succs) != 1 || returnEdge.Target != succs[0] {
		t.Error("return edge should target the call site's successor")
	}
}

func TestBuildRejectsArityMismatch(t *testing.T) {
	w, _, _ := buildWorld(t, 2)
	_, err := Build(callgraph.BuildCHA(w))
	if err == nil {
		t.Fatal("expected an error for mismatched argument count")
	}
}

func TestMethodOf(t *testing.T) {
	w, call, callee := buildWorld(t, 1)
	g, err := Build(callgraph.BuildCHA(w))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if g.MethodOf(call) != w.Entry {
		t.Error("call site should belong to the entry method")
	}
	if g.MethodOf(cfg.Of(callee).Entry()) != callee {
		t.Error("callee entry node should belong to the callee")
	}
	if g.GlobalEntry() != cfg.Of(w.Entry).Entry() {
		t.Error("global entry should be the entry method's CFG entry")
	}
}
