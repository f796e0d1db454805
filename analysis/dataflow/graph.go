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

// Graph is the view of a flow graph the intraprocedural solvers need:
// node enumeration, entry and exit, and adjacency. The CFG type satisfies
// it with statements as nodes.
type Graph[N comparable] interface {
	Nodes() []N
	Entry() N
	Exit() N
	IsEntry(N) bool
	IsExit(N) bool
	Preds(N) []N
	Succs(N) []N
}

// Analysis is the capability record a dataflow analysis hands to the
// solver. Facts of type F must form a finite-height lattice, MeetInto
// must be the lattice meet restricted onto target, and TransferNode must
// be monotone.
type Analysis[N comparable, F any] interface {
	// IsForward reports the direction facts flow in.
	IsForward() bool

	// NewBoundaryFact returns the fact injected at the graph boundary:
	// the entry node for forward analyses, the exit node for backward
	// ones.
	NewBoundaryFact(g Graph[N]) F

	// NewInitialFact returns the bottom fact every non-boundary node
	// starts from.
	NewInitialFact() F

	// MeetInto meets fact into target, mutating target.
	MeetInto(fact F, target F)

	// TransferNode applies the node's transfer function and reports
	// whether the output fact changed. Forward analyses write out;
	// backward analyses write in.
	TransferNode(node N, in F, out F) bool
}

// Result holds the IN and OUT facts per node computed by a solver. Once a
// solver returns, the result is frozen and consumed read-only.
type Result[N comparable, F any] struct {
	in  map[N]F
	out map[N]F
}

// NewResult returns an empty result.
func NewResult[N comparable, F any]() *Result[N, F] {
	return &Result[N, F]{in: map[N]F{}, out: map[N]F{}}
}

// InFact returns the IN fact of the node.
func (r *Result[N, F]) InFact(n N) F { return r.in[n] }

// OutFact returns the OUT fact of the node.
func (r *Result[N, F]) OutFact(n N) F { return r.out[n] }

// SetInFact records the IN fact of the node.
func (r *Result[N, F]) SetInFact(n N, f F) { r.in[n] = f }

// SetOutFact records the OUT fact of the node.
func (r *Result[N, F]) SetOutFact(n N, f F) { r.out[n] = f }
