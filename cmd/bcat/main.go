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

package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/awslabs/ar-bc-tools/analysis"
	"github.com/awslabs/ar-bc-tools/analysis/callgraph"
	"github.com/awslabs/ar-bc-tools/analysis/config"
	"github.com/awslabs/ar-bc-tools/analysis/constprop"
	"github.com/awslabs/ar-bc-tools/analysis/deadcode"
	"github.com/awslabs/ar-bc-tools/analysis/icfg"
	"github.com/awslabs/ar-bc-tools/analysis/ir"
	"github.com/awslabs/ar-bc-tools/analysis/livevars"
	"github.com/awslabs/ar-bc-tools/internal/formatutil"
)

var (
	configPath = flag.String("config", "", "Config file path for analysis")
	analysesF  = flag.String("analyses", "", "Comma-separated analyses to run, overriding the config")
	verbose    = flag.Bool("verbose", false, "Raise the log level to debug (logs go to standard error)")
)

const usage = ` Run the bytecode analyses over the built-in sample program.
Usage:
    bcat [options]
Examples:
% bcat -config config.yaml
% bcat -analyses constprop-inter,deadcode
Options:
`

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", formatutil.Red("error:"), err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.NewDefault()
	if *configPath != "" {
		config.SetGlobalConfig(*configPath)
		loaded, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("could not load config %q: %w", *configPath, err)
		}
		cfg = loaded
	}
	if *analysesF != "" {
		cfg.Analyses = strings.Split(*analysesF, ",")
	}
	if len(cfg.Analyses) == 0 {
		cfg.Analyses = []string{
			constprop.ID, livevars.ID, deadcode.ID,
			callgraph.ID, icfg.ID, constprop.InterID,
		}
	}
	if *verbose && cfg.LogLevel < int(config.DebugLevel) {
		cfg.LogLevel = int(config.DebugLevel)
	}

	world := sampleWorld()
	state := analysis.NewState(world, cfg)
	if err := analysis.RunConfigured(state); err != nil {
		return err
	}

	if state.CallGraph != nil {
		reportCallGraph(state)
	}
	if state.DeadCode != nil {
		reportDeadCode(state)
	}
	if state.InterConstants != nil {
		reportConstants(state)
	}
	if cfg.ReportDot && state.CallGraph != nil {
		if err := writeDot(state); err != nil {
			return err
		}
	}
	return nil
}

func reportCallGraph(s *analysis.State) {
	fmt.Println(formatutil.Bold("call graph"))
	for _, e := range s.CallGraph.Edges() {
		fmt.Printf("  %s -> %s %s\n",
			e.Caller, formatutil.Green(e.Callee.String()),
			formatutil.Faint(fmt.Sprintf("(line %d)", e.CallSite.LineNumber())))
	}
	if s.Config.ReportRecursion {
		for _, group := range callgraph.RecursiveGroups(s.CallGraph) {
			names := make([]string, len(group))
			for i, m := range group {
				names[i] = m.String()
			}
			fmt.Printf("  %s %s\n", formatutil.Yellow("recursive:"), strings.Join(names, " <-> "))
		}
	}
}

func reportDeadCode(s *analysis.State) {
	fmt.Println(formatutil.Bold("dead code"))
	for _, m := range s.World.Methods() {
		for _, stmt := range s.DeadCode[m] {
			fmt.Printf("  %s line %d: %s\n", m, stmt.LineNumber(), formatutil.Red(formatutil.SanitizeRepr(stmt)))
		}
	}
}

// reportConstants prints, per reachable method, the constant values
// known at its return statements.
func reportConstants(s *analysis.State) {
	fmt.Println(formatutil.Bold("constants at returns"))
	for _, m := range s.CallGraph.ReachableMethods() {
		for _, stmt := range m.Stmts() {
			ret, ok := stmt.(*ir.Return)
			if !ok || ret.Var == nil {
				continue
			}
			v := s.InterConstants.InFact(stmt).Get(ret.Var)
			fmt.Printf("  %s line %d: %s = %s\n", m, ret.LineNumber(), ret.Var, formatutil.Cyan(v.String()))
		}
	}
}

func writeDot(s *analysis.State) error {
	b, err := callgraph.MarshalDOT(s.CallGraph, "callgraph")
	if err != nil {
		return fmt.Errorf("could not render call graph: %w", err)
	}
	if err := os.MkdirAll(s.Config.ReportsDir, 0o755); err != nil {
		return fmt.Errorf("could not create reports dir: %w", err)
	}
	file := path.Join(s.Config.ReportsDir, "callgraph.dot")
	if err := os.WriteFile(file, b, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", file, err)
	}
	s.Logger.Infof("call graph written to %s", file)
	return nil
}
