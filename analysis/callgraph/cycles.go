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
	"sort"

	"github.com/yourbasic/graph"

	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

// RecursiveGroups returns the groups of mutually recursive methods in
// the call graph: the strongly connected components with more than one
// method, plus single methods that call themselves. Methods within a
// group keep discovery order.
func RecursiveGroups(cg *Graph) [][]*ir.Method {
	index := make(map[*ir.Method]int, len(cg.methods))
	for i, m := range cg.methods {
		index[m] = i
	}
	g := graph.New(len(cg.methods))
	selfLoop := make([]bool, len(cg.methods))
	for _, e := range cg.edges {
		v, w := index[e.Caller], index[e.Callee]
		if v == w {
			selfLoop[v] = true
			continue
		}
		g.Add(v, w)
	}
	var groups [][]*ir.Method
	for _, comp := range graph.StrongComponents(g) {
		if len(comp) == 1 && !selfLoop[comp[0]] {
			continue
		}
		sort.Ints(comp)
		ms := make([]*ir.Method, len(comp))
		for i, v := range comp {
			ms[i] = cg.methods[v]
		}
		groups = append(groups, ms)
	}
	return groups
}
