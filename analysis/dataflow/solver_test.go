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

package dataflow_test

import (
	"errors"
	"testing"

	"github.com/awslabs/ar-bc-tools/analysis/cfg"
	"github.com/awslabs/ar-bc-tools/analysis/constprop"
	"github.com/awslabs/ar-bc-tools/analysis/dataflow"
	"github.com/awslabs/ar-bc-tools/analysis/ir"
	"github.com/awslabs/ar-bc-tools/analysis/livevars"
)

// loopMethod builds a body with a branch and a back edge so both solver
// strategies have something to iterate over.
func loopMethod() *ir.Method {
	p := &ir.Var{Name: "p", Type: ir.TypeInt}
	c := ir.NewClass("Test", nil)
	m := ir.NewMethod(c, "loop", []*ir.Var{p}, ir.TypeInt, false)
	b := ir.NewBuilder(m)
	i := b.Local("i", ir.TypeInt)
	one := b.Local("one", ir.TypeInt)
	headL := b.NewLabel()
	exitL := b.NewLabel()
	b.AssignInt(i, 0)
	b.AssignInt(one, 1)
	b.Bind(headL)
	b.If(&ir.ConditionExp{Op: ir.OpGE, X: i, Y: p}, exitL)
	b.Assign(i, &ir.ArithmeticExp{Op: ir.OpAdd, X: i, Y: one})
	b.Goto(headL)
	b.Bind(exitL)
	b.Return(i)
	b.Finish()
	return m
}

func TestForwardIterativeUnsupported(t *testing.T) {
	m := loopMethod()
	_, err := dataflow.Solve[ir.Stmt, *constprop.Fact](cfg.Of(m), constprop.NewAnalysis(), dataflow.StrategyIterative)
	if !errors.Is(err, dataflow.ErrUnsupported) {
		t.Fatalf("got %v, want ErrUnsupported", err)
	}
}

func TestIterativeMatchesWorklist(t *testing.T) {
	m := loopMethod()
	g := cfg.Of(m)
	iter, err := dataflow.Solve[ir.Stmt, *livevars.Fact](g, livevars.NewAnalysis(), dataflow.StrategyIterative)
	if err != nil {
		t.Fatalf("iterative solve failed: %v", err)
	}
	work, err := dataflow.Solve[ir.Stmt, *livevars.Fact](g, livevars.NewAnalysis(), dataflow.StrategyWorklist)
	if err != nil {
		t.Fatalf("worklist solve failed: %v", err)
	}
	for _, n := range g.Nodes() {
		if !iter.InFact(n).Equal(work.InFact(n)) {
			t.Errorf("IN facts differ at %v: iterative %d vs worklist %d elements",
				n, iter.InFact(n).Len(), work.InFact(n).Len())
		}
		if !iter.OutFact(n).Equal(work.OutFact(n)) {
			t.Errorf("OUT facts differ at %v", n)
		}
	}
}

func TestBoundaryFactPlacement(t *testing.T) {
	m := loopMethod()
	g := cfg.Of(m)
	r, err := dataflow.Solve[ir.Stmt, *constprop.Fact](g, constprop.NewAnalysis(), dataflow.StrategyWorklist)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	p := m.Params[0]
	if got := r.InFact(g.Entry()).Get(p); got != constprop.NAC() {
		t.Errorf("entry IN binds %s to %s, want NAC", p, got)
	}
	if got := r.OutFact(g.Entry()).Get(p); got != constprop.NAC() {
		t.Errorf("entry OUT binds %s to %s, want NAC", p, got)
	}
}
