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

package dataflow

import (
	"github.com/awslabs/ar-bc-tools/analysis/icfg"
	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

// InterAnalysis is the capability record an interprocedural forward
// analysis hands to SolveInter. Node transfers are split on call sites,
// and every edge kind of the ICFG carries its own transfer so facts can
// be reshaped when crossing method boundaries. Edge transfers must not
// mutate their input fact.
type InterAnalysis[F any] interface {
	// NewBoundaryFact returns the fact injected at the entry node of the
	// entry method.
	NewBoundaryFact(g *icfg.ICFG) F

	// NewInitialFact returns the bottom fact every other node starts from.
	NewInitialFact() F

	// MeetInto meets fact into target, mutating target.
	MeetInto(fact F, target F)

	// TransferCallNode applies the node transfer of a call site and
	// reports whether out changed.
	TransferCallNode(node ir.Stmt, in F, out F) bool

	// TransferNonCallNode applies the node transfer of every other node
	// and reports whether out changed.
	TransferNonCallNode(node ir.Stmt, in F, out F) bool

	// TransferNormalEdge maps the source's OUT fact across an
	// intraprocedural edge.
	TransferNormalEdge(e *icfg.Edge, out F) F

	// TransferCallToReturnEdge maps the call site's OUT fact across the
	// edge that bypasses the callee.
	TransferCallToReturnEdge(e *icfg.Edge, out F) F

	// TransferCallEdge maps the call site's OUT fact into the callee's
	// entry fact.
	TransferCallEdge(e *icfg.Edge, callSiteOut F) F

	// TransferReturnEdge maps the callee exit's OUT fact back to the
	// return site.
	TransferReturnEdge(e *icfg.Edge, calleeExitOut F) F
}

// SolveInter runs the interprocedural analysis over the ICFG to its
// fixed point. IN facts accumulate: each pass meets the incoming edge
// contributions into the node's standing IN fact, so facts only rise
// in the lattice.
func SolveInter[F any](g *icfg.ICFG, a InterAnalysis[F]) *Result[ir.Stmt, F] {
	r := NewResult[ir.Stmt, F]()
	for _, n := range g.Nodes() {
		if n == g.GlobalEntry() {
			r.SetInFact(n, a.NewBoundaryFact(g))
		} else {
			r.SetInFact(n, a.NewInitialFact())
		}
		r.SetOutFact(n, a.NewInitialFact())
	}

	wl := newWorklist[ir.Stmt]()
	for _, n := range g.Nodes() {
		wl.push(n)
	}
	for !wl.empty() {
		n := wl.pop()
		in := r.InFact(n)
		for _, e := range g.InEdgesOf(n) {
			a.MeetInto(transferEdge(a, e, r.OutFact(e.Source)), in)
		}
		var changed bool
		if _, ok := n.(*ir.Invoke); ok {
			changed = a.TransferCallNode(n, in, r.OutFact(n))
		} else {
			changed = a.TransferNonCallNode(n, in, r.OutFact(n))
		}
		if changed {
			for _, e := range g.OutEdgesOf(n) {
				wl.push(e.Target)
			}
		}
	}
	return r
}

func transferEdge[F any](a InterAnalysis[F], e *icfg.Edge, out F) F {
	switch e.Kind {
	case icfg.EdgeCall:
		return a.TransferCallEdge(e, out)
	case icfg.EdgeReturn:
		return a.TransferReturnEdge(e, out)
	case icfg.EdgeCallToReturn:
		return a.TransferCallToReturnEdge(e, out)
	default:
		return a.TransferNormalEdge(e, out)
	}
}
