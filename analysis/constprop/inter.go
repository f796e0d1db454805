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
	"github.com/awslabs/ar-bc-tools/analysis/icfg"
	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

// InterID identifies the interprocedural constant propagation analysis.
const InterID = "constprop-inter"

// InterAnalysis is constant propagation over an ICFG. Argument values
// flow into callee parameters along call edges, returned values flow
// back to call-site result variables along return edges, and the
// call-to-return edge kills the result variable so the intraprocedural
// path cannot smuggle a stale binding past the call.
type InterAnalysis struct {
	intra *Analysis
}

// NewInterAnalysis returns the interprocedural analysis.
func NewInterAnalysis() *InterAnalysis {
	return &InterAnalysis{intra: NewAnalysis()}
}

// NewBoundaryFact pins the entry method's int-typed parameters to NAC.
// Parameters of other methods start UNDEF and are populated by call
// edges.
func (*InterAnalysis) NewBoundaryFact(g *icfg.ICFG) *Fact {
	f := NewFact()
	for _, p := range g.EntryMethod().Params {
		if p.Type.CanHoldInt() {
			f.Update(p, NAC())
		}
	}
	return f
}

// NewInitialFact returns the bottom fact.
func (*InterAnalysis) NewInitialFact() *Fact { return NewFact() }

// MeetInto meets fact into target, binding by binding.
func (a *InterAnalysis) MeetInto(fact, target *Fact) {
	a.intra.MeetInto(fact, target)
}

// TransferCallNode is the identity: the call site's effect on its
// result variable is carried entirely by the return and call-to-return
// edges.
func (*InterAnalysis) TransferCallNode(_ ir.Stmt, in, out *Fact) bool {
	if in.Equal(out) {
		return false
	}
	out.Set(in)
	return true
}

// TransferNonCallNode applies the intraprocedural transfer.
func (a *InterAnalysis) TransferNonCallNode(node ir.Stmt, in, out *Fact) bool {
	return a.intra.TransferNode(node, in, out)
}

// TransferNormalEdge propagates the fact unchanged.
func (*InterAnalysis) TransferNormalEdge(_ *icfg.Edge, out *Fact) *Fact { return out }

// TransferCallToReturnEdge kills the call site's result variable; its
// value after the call comes from the return edge alone.
func (*InterAnalysis) TransferCallToReturnEdge(e *icfg.Edge, out *Fact) *Fact {
	call := e.Source.(*ir.Invoke)
	if call.LHS == nil {
		return out
	}
	f := out.Copy()
	f.Remove(call.LHS)
	return f
}

// TransferCallEdge builds the callee's entry fact from the argument
// values at the call site.
func (*InterAnalysis) TransferCallEdge(e *icfg.Edge, callSiteOut *Fact) *Fact {
	call := e.Source.(*ir.Invoke)
	f := NewFact()
	for i, p := range e.Callee.Params {
		if p.Type.CanHoldInt() {
			f.Update(p, callSiteOut.Get(call.Exp.Args[i]))
		}
	}
	return f
}

// TransferReturnEdge binds the call site's result variable to the meet
// of the callee's returned values.
func (*InterAnalysis) TransferReturnEdge(e *icfg.Edge, calleeExitOut *Fact) *Fact {
	f := NewFact()
	lhs := e.CallSite.LHS
	if lhs == nil || !lhs.Type.CanHoldInt() {
		return f
	}
	ret := Undef()
	for _, v := range e.ReturnVars {
		ret = MeetValue(ret, calleeExitOut.Get(v))
	}
	f.Update(lhs, ret)
	return f
}
