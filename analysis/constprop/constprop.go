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

package constprop

import (
	"github.com/awslabs/ar-bc-tools/analysis/cfg"
	"github.com/awslabs/ar-bc-tools/analysis/dataflow"
	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

// ID identifies the intraprocedural constant propagation analysis.
const ID = "constprop"

// Analysis is the intraprocedural constant propagation. It satisfies
// dataflow.Analysis over statements and Facts; run it with the worklist
// solver on a method's CFG.
type Analysis struct{}

// NewAnalysis returns the intraprocedural analysis.
func NewAnalysis() *Analysis { return &Analysis{} }

// IsForward reports that constants flow with execution order.
func (*Analysis) IsForward() bool { return true }

// NewBoundaryFact pins every int-typed parameter of the method to NAC:
// nothing is known about values entering from callers.
func (*Analysis) NewBoundaryFact(g dataflow.Graph[ir.Stmt]) *Fact {
	f := NewFact()
	for _, p := range g.(*cfg.CFG).Method().Params {
		if p.Type.CanHoldInt() {
			f.Update(p, NAC())
		}
	}
	return f
}

// NewInitialFact returns the bottom fact: every variable UNDEF.
func (*Analysis) NewInitialFact() *Fact { return NewFact() }

// MeetInto meets fact into target, binding by binding.
func (*Analysis) MeetInto(fact, target *Fact) {
	fact.ForEach(func(v *ir.Var, val Value) {
		target.Update(v, MeetValue(val, target.Get(v)))
	})
}

// TransferNode propagates in through the statement into out and reports
// whether out changed. Assignments to int-typed variables gen the value
// of their right-hand side; a call result is NAC since the callee is
// not consulted. Everything else is the identity.
func (a *Analysis) TransferNode(node ir.Stmt, in, out *Fact) bool {
	next := in.Copy()
	if def := ir.Def(node); def != nil && def.Type.CanHoldInt() {
		switch s := node.(type) {
		case *ir.AssignStmt:
			next.Update(def, Evaluate(s.RHS, in))
		case *ir.Invoke:
			next.Update(def, NAC())
		}
	}
	if next.Equal(out) {
		return false
	}
	out.Set(next)
	return true
}
