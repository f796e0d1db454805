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

// Package livevars implements live-variable analysis, a backward
// may-analysis over sets of variables. A variable is live at a program
// point when some path from that point reads it before redefining it.
package livevars

import (
	"github.com/awslabs/ar-bc-tools/analysis/dataflow"
	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

// ID identifies the live variables analysis.
const ID = "livevars"

// Fact is the set of variables live at a program point.
type Fact = dataflow.SetFact[*ir.Var]

// Analysis satisfies dataflow.Analysis over statements and variable
// sets. Both the iterative and the worklist backward solvers accept it.
type Analysis struct{}

// NewAnalysis returns the live variables analysis.
func NewAnalysis() *Analysis { return &Analysis{} }

// IsForward reports that liveness flows against execution order.
func (*Analysis) IsForward() bool { return false }

// NewBoundaryFact returns the empty set: nothing is live at exit.
func (*Analysis) NewBoundaryFact(dataflow.Graph[ir.Stmt]) *Fact {
	return dataflow.NewSetFact[*ir.Var]()
}

// NewInitialFact returns the empty set.
func (*Analysis) NewInitialFact() *Fact {
	return dataflow.NewSetFact[*ir.Var]()
}

// MeetInto unions fact into target.
func (*Analysis) MeetInto(fact, target *Fact) {
	target.Union(fact)
}

// TransferNode computes IN = (OUT \ def) ∪ use and reports whether IN
// changed. The kill applies before the gen so a statement that both
// reads and writes a variable, such as x = x + 1, keeps it live.
func (*Analysis) TransferNode(node ir.Stmt, in, out *Fact) bool {
	next := out.Copy()
	if def := ir.Def(node); def != nil {
		next.Remove(def)
	}
	for _, u := range ir.Uses(node) {
		next.Add(u)
	}
	if next.Equal(in) {
		return false
	}
	in.Set(next)
	return true
}
