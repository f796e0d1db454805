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

// Package cfg builds intraprocedural control-flow graphs over IR method
// bodies. Nodes are statements; a synthetic entry and exit node bracket
// the body. Out-edges carry the branch kind so constant-guided analyses
// can prune by edge.
package cfg

import (
	"fmt"

	"github.com/awslabs/ar-bc-tools/analysis/ir"
)

// ID is the analysis identifier under which each method's CFG is stored.
const ID = "cfg"

// EdgeKind tags an out-edge with how control transfers along it.
type EdgeKind int

const (
	EdgeNormal EdgeKind = iota
	EdgeIfTrue
	EdgeIfFalse
	EdgeSwitchCase
	EdgeSwitchDefault
)

var edgeKindNames = [...]string{"normal", "if-true", "if-false", "switch-case", "switch-default"}

func (k EdgeKind) String() string { return edgeKindNames[k] }

// Edge is a directed CFG edge. CaseValue is meaningful only for
// EdgeSwitchCase edges.
type Edge struct {
	Kind      EdgeKind
	CaseValue int32
	Source    ir.Stmt
	Target    ir.Stmt
}

func (e Edge) String() string {
	if e.Kind == EdgeSwitchCase {
		return fmt.Sprintf("%d -[case %d]-> %d", e.Source.Index(), e.CaseValue, e.Target.Index())
	}
	return fmt.Sprintf("%d -[%s]-> %d", e.Source.Index(), e.Kind, e.Target.Index())
}

// CFG is the control-flow graph of a single method. The synthetic entry
// node has index len(body) and the exit node index len(body)+1, so
// statement indices remain a dense numbering of all nodes.
type CFG struct {
	method *ir.Method
	entry  ir.Stmt
	exit   ir.Stmt
	nodes  []ir.Stmt

	out map[ir.Stmt][]Edge
	in  map[ir.Stmt][]Edge
}

// Method returns the method this CFG was built from.
func (c *CFG) Method() *ir.Method { return c.method }

// Entry returns the synthetic entry node.
func (c *CFG) Entry() ir.Stmt { return c.entry }

// Exit returns the synthetic exit node.
func (c *CFG) Exit() ir.Stmt { return c.exit }

// IsEntry reports whether n is the entry node.
func (c *CFG) IsEntry(n ir.Stmt) bool { return n == c.entry }

// IsExit reports whether n is the exit node.
func (c *CFG) IsExit(n ir.Stmt) bool { return n == c.exit }

// Nodes returns all nodes, body statements first, then entry and exit.
func (c *CFG) Nodes() []ir.Stmt { return c.nodes }

// NumNodes returns the node count including entry and exit.
func (c *CFG) NumNodes() int { return len(c.nodes) }

// OutEdges returns the out-edges of n.
func (c *CFG) OutEdges(n ir.Stmt) []Edge { return c.out[n] }

// InEdges returns the in-edges of n.
func (c *CFG) InEdges(n ir.Stmt) []Edge { return c.in[n] }

// Succs returns the successor nodes of n, one per out-edge.
func (c *CFG) Succs(n ir.Stmt) []ir.Stmt {
	edges := c.out[n]
	succs := make([]ir.Stmt, len(edges))
	for i, e := range edges {
		succs[i] = e.Target
	}
	return succs
}

// Preds returns the predecessor nodes of n, one per in-edge.
func (c *CFG) Preds(n ir.Stmt) []ir.Stmt {
	edges := c.in[n]
	preds := make([]ir.Stmt, len(edges))
	for i, e := range edges {
		preds[i] = e.Source
	}
	return preds
}

func (c *CFG) addEdge(e Edge) {
	c.out[e.Source] = append(c.out[e.Source], e)
	c.in[e.Target] = append(c.in[e.Target], e)
}

// Build constructs the CFG of a method body. Branch targets are statement
// indices produced by the IR builder; a return transfers to the exit node
// and the last statement falls through to the exit if it can fall
// through at all.
func Build(m *ir.Method) *CFG {
	body := m.Stmts()
	n := len(body)
	c := &CFG{
		method: m,
		entry:  ir.NewSyntheticNop(n),
		exit:   ir.NewSyntheticNop(n + 1),
		out:    map[ir.Stmt][]Edge{},
		in:     map[ir.Stmt][]Edge{},
	}
	c.nodes = append(append([]ir.Stmt{}, body...), c.entry, c.exit)

	next := func(i int) ir.Stmt {
		if i+1 < n {
			return body[i+1]
		}
		return c.exit
	}

	if n == 0 {
		c.addEdge(Edge{Kind: EdgeNormal, Source: c.entry, Target: c.exit})
		return c
	}
	c.addEdge(Edge{Kind: EdgeNormal, Source: c.entry, Target: body[0]})

	for i, s := range body {
		switch s := s.(type) {
		case *ir.If:
			c.addEdge(Edge{Kind: EdgeIfTrue, Source: s, Target: body[s.Target]})
			c.addEdge(Edge{Kind: EdgeIfFalse, Source: s, Target: next(i)})
		case *ir.Goto:
			c.addEdge(Edge{Kind: EdgeNormal, Source: s, Target: body[s.Target]})
		case *ir.SwitchStmt:
			for _, ct := range s.Cases {
				c.addEdge(Edge{Kind: EdgeSwitchCase, CaseValue: ct.Value, Source: s, Target: body[ct.Target]})
			}
			c.addEdge(Edge{Kind: EdgeSwitchDefault, Source: s, Target: body[s.DefaultTarget]})
		case *ir.Return:
			c.addEdge(Edge{Kind: EdgeNormal, Source: s, Target: c.exit})
		default:
			c.addEdge(Edge{Kind: EdgeNormal, Source: s, Target: next(i)})
		}
	}
	return c
}

// Of fetches the CFG stored on the method, building and storing it when
// absent.
func Of(m *ir.Method) *CFG {
	if r, ok := m.GetResult(ID); ok {
		return r.(*CFG)
	}
	c := Build(m)
	m.StoreResult(ID, c)
	return c
}
