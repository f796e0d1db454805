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

package callgraph

import (
	"strconv"

	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

type dotNode struct {
	id int64
	m  *ir.Method
}

func (n dotNode) ID() int64 { return n.id }

func (n dotNode) DOTID() string { return strconv.Quote(n.m.String()) }

// MarshalDOT renders the call graph in Graphviz dot form, one node per
// reachable method. Parallel edges from distinct call sites to the same
// callee collapse into one.
func MarshalDOT(cg *Graph, name string) ([]byte, error) {
	g := simple.NewDirectedGraph()
	nodes := make(map[*ir.Method]dotNode, len(cg.methods))
	for i, m := range cg.methods {
		n := dotNode{id: int64(i), m: m}
		nodes[m] = n
		g.AddNode(n)
	}
	for _, e := range cg.edges {
		if e.Caller == e.Callee {
			continue
		}
		g.SetEdge(simple.Edge{F: nodes[e.Caller], T: nodes[e.Callee]})
	}
	return dot.Marshal(g, name, "", "  ")
}
