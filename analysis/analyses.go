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

// Package analysis runs the registered analyses over a loaded world,
// resolving dependencies between them. Per-method results are stored on
// the methods under the analysis identifier; whole-program artifacts
// live on the State.
package analysis

import (
	"fmt"

	"github.com/awslabs/ar-bc-tools/analysis/callgraph"
	"github.com/awslabs/ar-bc-tools/analysis/cfg"
	"github.com/awslabs/ar-bc-tools/analysis/config"
	"github.com/awslabs/ar-bc-tools/analysis/constprop"
	"github.com/awslabs/ar-bc-tools/analysis/dataflow"
	"github.com/awslabs/ar-bc-tools/analysis/deadcode"
	"github.com/awslabs/ar-bc-tools/analysis/icfg"
	"github.com/awslabs/ar-bc-tools/analysis/ir"
	"github.com/awslabs/ar-bc-tools/analysis/livevars"
)

// State carries the artifacts the analyses produce over one world.
// Running an analysis fills its field; analyses that depend on it read
// it from here.
type State struct {
	World  *ir.World
	Config *config.Config
	Logger *config.LogGroup

	CallGraph      *callgraph.Graph
	ICFG           *icfg.ICFG
	InterConstants *dataflow.Result[ir.Stmt, *constprop.Fact]
	DeadCode       map[*ir.Method][]ir.Stmt
}

// NewState returns a state for the world with nothing computed yet.
func NewState(w *ir.World, cfg *config.Config) *State {
	return &State{
		World:  w,
		Config: cfg,
		Logger: config.NewLogGroup(cfg),
	}
}

type task struct {
	requires []string
	run      func(*State) error
}

var tasks = map[string]task{
	constprop.ID: {run: runConstProp},
	livevars.ID:  {run: runLiveVars},
	deadcode.ID:  {run: runDeadCode},
	callgraph.ID: {run: runCallGraph},
	icfg.ID:      {requires: []string{callgraph.ID}, run: runICFG},
	constprop.InterID: {
		requires: []string{icfg.ID},
		run:      runInterConstProp,
	},
}

// Run executes the named analyses on the state, running the
// dependencies of each first. Every analysis runs at most once.
func Run(s *State, ids ...string) error {
	done := map[string]bool{}
	for _, id := range ids {
		if err := runOne(s, id, done); err != nil {
			return err
		}
	}
	return nil
}

// RunConfigured executes the analyses listed in the state's config.
func RunConfigured(s *State) error {
	return Run(s, s.Config.Analyses...)
}

func runOne(s *State, id string, done map[string]bool) error {
	if done[id] {
		return nil
	}
	t, ok := tasks[id]
	if !ok {
		return fmt.Errorf("unknown analysis %q", id)
	}
	for _, dep := range t.requires {
		if err := runOne(s, dep, done); err != nil {
			return err
		}
	}
	s.Logger.Infof("running %s", id)
	if err := t.run(s); err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}
	done[id] = true
	return nil
}

func (s *State) strategy() dataflow.Strategy {
	if s.Config.SolverStrategy == config.StrategyIterative {
		return dataflow.StrategyIterative
	}
	return dataflow.StrategyWorklist
}

func runConstProp(s *State) error {
	for _, m := range s.World.Methods() {
		r, err := dataflow.Solve[ir.Stmt, *constprop.Fact](cfg.Of(m), constprop.NewAnalysis(), s.strategy())
		if err != nil {
			return fmt.Errorf("%v: %w", m, err)
		}
		m.StoreResult(constprop.ID, r)
		s.Logger.Debugf("constants of %v computed", m)
	}
	return nil
}

func runLiveVars(s *State) error {
	for _, m := range s.World.Methods() {
		r, err := dataflow.Solve[ir.Stmt, *livevars.Fact](cfg.Of(m), livevars.NewAnalysis(), s.strategy())
		if err != nil {
			return fmt.Errorf("%v: %w", m, err)
		}
		m.StoreResult(livevars.ID, r)
	}
	return nil
}

func runDeadCode(s *State) error {
	s.DeadCode = map[*ir.Method][]ir.Stmt{}
	for _, m := range s.World.Methods() {
		dead, err := deadcode.Detect(m)
		if err != nil {
			return fmt.Errorf("%v: %w", m, err)
		}
		m.StoreResult(deadcode.ID, dead)
		if len(dead) > 0 {
			s.DeadCode[m] = dead
		}
	}
	return nil
}

func runCallGraph(s *State) error {
	s.CallGraph = callgraph.BuildCHA(s.World)
	s.Logger.Debugf("call graph: %d reachable methods, %d edges",
		len(s.CallGraph.ReachableMethods()), len(s.CallGraph.Edges()))
	return nil
}

func runICFG(s *State) error {
	g, err := icfg.Build(s.CallGraph)
	if err != nil {
		return err
	}
	s.ICFG = g
	return nil
}

func runInterConstProp(s *State) error {
	s.InterConstants = dataflow.SolveInter[*constprop.Fact](s.ICFG, constprop.NewInterAnalysis())
	return nil
}
