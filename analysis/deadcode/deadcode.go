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

// Package deadcode detects dead code in a method: statements no
// execution can reach, taking constant branch conditions into account,
// and assignments whose target is never read afterwards and whose
// right-hand side cannot raise an effect.
package deadcode

import (
	"github.com/oleiade/lane"
	"golang.org/x/tools/container/intsets"

	"github.com/awslabs/ar-bc-tools/analysis/cfg"
	"github.com/awslabs/ar-bc-tools/analysis/constprop"
	"github.com/awslabs/ar-bc-tools/analysis/dataflow"
	"github.com/awslabs/ar-bc-tools/analysis/ir"
	"github.com/awslabs/ar-bc-tools/analysis/livevars"
	"github.com/awslabs/ar-bc-tools/internal/funcutil"
)

// ID identifies the dead code detection analysis.
const ID = "deadcode"

// Detect returns the dead statements of the method sorted by index. It
// runs constant propagation and live variables on the method's CFG and
// combines them: constants prune branch edges during the reachability
// walk, liveness exposes useless assignments on the paths that remain.
func Detect(m *ir.Method) ([]ir.Stmt, error) {
	c := cfg.Of(m)
	constants, err := dataflow.Solve[ir.Stmt, *constprop.Fact](c, constprop.NewAnalysis(), dataflow.StrategyWorklist)
	if err != nil {
		return nil, err
	}
	live, err := dataflow.Solve[ir.Stmt, *livevars.Fact](c, livevars.NewAnalysis(), dataflow.StrategyWorklist)
	if err != nil {
		return nil, err
	}

	var visited intsets.Sparse
	dead := map[int]bool{}

	wl := lane.NewQueue()
	wl.Enqueue(c.Entry())
	for !wl.Empty() {
		n := wl.Dequeue().(ir.Stmt)
		if visited.Has(n.Index()) {
			continue
		}
		visited.Insert(n.Index())

		if s, ok := n.(*ir.AssignStmt); ok {
			if !live.OutFact(n).Has(s.LHS) && !hasSideEffect(s.RHS) {
				dead[n.Index()] = true
			}
		}
		for _, e := range liveOutEdges(c, n, constants.InFact(n)) {
			wl.Enqueue(e.Target)
		}
	}

	for _, n := range c.Nodes() {
		if n.LineNumber() > 0 && !visited.Has(n.Index()) {
			dead[n.Index()] = true
		}
	}

	// Node slots are dense: c.Nodes()[i] is the statement with index i.
	nodes := c.Nodes()
	result := make([]ir.Stmt, 0, len(dead))
	for _, i := range funcutil.SetToOrderedSlice(dead) {
		result = append(result, nodes[i])
	}
	return result, nil
}

// liveOutEdges returns the out-edges executions can actually follow
// from n given the constant values flowing into it. A constant branch
// condition selects one edge, an unknown one all edges, and a condition
// no value ever reaches selects none.
func liveOutEdges(c *cfg.CFG, n ir.Stmt, in *constprop.Fact) []cfg.Edge {
	edges := c.OutEdges(n)
	switch s := n.(type) {
	case *ir.If:
		v := constprop.Evaluate(s.Cond, in)
		if v.IsNAC() {
			return edges
		}
		if v.IsUndef() {
			return nil
		}
		want := cfg.EdgeIfFalse
		if v.Constant() != 0 {
			want = cfg.EdgeIfTrue
		}
		return edgesOfKind(edges, func(e cfg.Edge) bool { return e.Kind == want })
	case *ir.SwitchStmt:
		v := in.Get(s.Var)
		if v.IsNAC() {
			return edges
		}
		if v.IsUndef() {
			return nil
		}
		matched := edgesOfKind(edges, func(e cfg.Edge) bool {
			return e.Kind == cfg.EdgeSwitchCase && e.CaseValue == v.Constant()
		})
		if len(matched) > 0 {
			return matched
		}
		return edgesOfKind(edges, func(e cfg.Edge) bool { return e.Kind == cfg.EdgeSwitchDefault })
	default:
		return edges
	}
}

func edgesOfKind(edges []cfg.Edge, keep func(cfg.Edge) bool) []cfg.Edge {
	var out []cfg.Edge
	for _, e := range edges {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// hasSideEffect reports whether evaluating the expression can be
// observed beyond its value: allocation, memory reads that may fault,
// casts, calls, and division or remainder, which may throw.
func hasSideEffect(e ir.Exp) bool {
	switch e := e.(type) {
	case *ir.IntLiteral, *ir.VarExp, *ir.BitwiseExp, *ir.ConditionExp, *ir.ShiftExp, *ir.InstanceOfExp:
		return false
	case *ir.ArithmeticExp:
		return e.Op == ir.OpDiv || e.Op == ir.OpRem
	default:
		return true
	}
}
