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
	"errors"
	"fmt"

	"github.com/oleiade/lane"

	"github.com/awslabs/ar-bc-tools/internal/funcutil"
)

// Strategy selects the fixed-point driver.
type Strategy int

const (
	// StrategyIterative sweeps all nodes in a fixed order until no fact
	// changes. Implemented for backward analyses.
	StrategyIterative Strategy = iota

	// StrategyWorklist re-processes only nodes whose inputs changed.
	StrategyWorklist
)

var strategyNames = [...]string{"iterative", "worklist"}

func (s Strategy) String() string { return strategyNames[s] }

// ErrUnsupported is returned by Solve when the strategy does not support
// the direction of the analysis. It is reported before any iteration
// starts.
var ErrUnsupported = errors.New("solver strategy not supported for analysis direction")

// Solve runs the analysis on the graph to its fixed point and returns the
// frozen result. The forward iterative combination is not implemented;
// requesting it fails with ErrUnsupported up front.
func Solve[N comparable, F any](g Graph[N], a Analysis[N, F], s Strategy) (*Result[N, F], error) {
	if a.IsForward() && s == StrategyIterative {
		return nil, fmt.Errorf("%w: forward iterative", ErrUnsupported)
	}
	r := initialize(g, a)
	switch {
	case a.IsForward():
		solveForwardWorklist(g, a, r)
	case s == StrategyIterative:
		solveBackwardIterative(g, a, r)
	default:
		solveBackwardWorklist(g, a, r)
	}
	return r, nil
}

// initialize allocates the facts: the boundary node gets the boundary
// fact on both sides, every other node a fresh initial fact.
func initialize[N comparable, F any](g Graph[N], a Analysis[N, F]) *Result[N, F] {
	r := NewResult[N, F]()
	var boundary N
	if a.IsForward() {
		boundary = g.Entry()
	} else {
		boundary = g.Exit()
	}
	for _, n := range g.Nodes() {
		if n == boundary {
			r.SetInFact(n, a.NewBoundaryFact(g))
			r.SetOutFact(n, a.NewBoundaryFact(g))
		} else {
			r.SetInFact(n, a.NewInitialFact())
			r.SetOutFact(n, a.NewInitialFact())
		}
	}
	return r
}

// worklist is a FIFO queue with a membership set so a node is never
// enqueued twice at the same time.
type worklist[N comparable] struct {
	queue  *lane.Queue
	member map[N]bool
}

func newWorklist[N comparable]() *worklist[N] {
	return &worklist[N]{queue: lane.NewQueue(), member: map[N]bool{}}
}

func (w *worklist[N]) push(n N) {
	if !w.member[n] {
		w.member[n] = true
		w.queue.Enqueue(n)
	}
}

func (w *worklist[N]) pop() N {
	n := w.queue.Dequeue().(N)
	w.member[n] = false
	return n
}

func (w *worklist[N]) empty() bool { return w.queue.Empty() }

func solveForwardWorklist[N comparable, F any](g Graph[N], a Analysis[N, F], r *Result[N, F]) {
	wl := newWorklist[N]()
	for _, n := range g.Nodes() {
		if !g.IsEntry(n) {
			wl.push(n)
		}
	}
	for !wl.empty() {
		n := wl.pop()
		in := a.NewInitialFact()
		for _, p := range g.Preds(n) {
			a.MeetInto(r.OutFact(p), in)
		}
		r.SetInFact(n, in)
		if a.TransferNode(n, in, r.OutFact(n)) {
			for _, s := range g.Succs(n) {
				wl.push(s)
			}
		}
	}
}

func solveBackwardWorklist[N comparable, F any](g Graph[N], a Analysis[N, F], r *Result[N, F]) {
	wl := newWorklist[N]()
	for _, n := range g.Nodes() {
		if !g.IsExit(n) {
			wl.push(n)
		}
	}
	for !wl.empty() {
		n := wl.pop()
		out := a.NewInitialFact()
		for _, s := range g.Succs(n) {
			a.MeetInto(r.InFact(s), out)
		}
		r.SetOutFact(n, out)
		if a.TransferNode(n, r.InFact(n), out) {
			for _, p := range g.Preds(n) {
				wl.push(p)
			}
		}
	}
}

// solveBackwardIterative sweeps all non-exit nodes in reverse body order
// until a full pass changes nothing. OUT facts accumulate across passes;
// with a monotone meet this reaches the same fixed point as the worklist
// driver.
func solveBackwardIterative[N comparable, F any](g Graph[N], a Analysis[N, F], r *Result[N, F]) {
	var order []N
	for _, n := range g.Nodes() {
		if !g.IsExit(n) {
			order = append(order, n)
		}
	}
	funcutil.Reverse(order)

	for changed := true; changed; {
		changed = false
		for _, n := range order {
			out := r.OutFact(n)
			for _, s := range g.Succs(n) {
				a.MeetInto(r.InFact(s), out)
			}
			if a.TransferNode(n, r.InFact(n), out) {
				changed = true
			}
		}
	}
}
