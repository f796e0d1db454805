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

package config

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/awslabs/ar-bc-tools/internal/funcutil"
)

var (
	// The global config file
	configFile string
)

// SetGlobalConfig sets the global config filename
func SetGlobalConfig(filename string) {
	configFile = filename
}

// LoadGlobal loads the config file that has been set by SetGlobalConfig
func LoadGlobal() (*Config, error) {
	return Load(configFile)
}

// Solver strategy names accepted in config files.
const (
	StrategyIterative = "iterative"
	StrategyWorklist  = "worklist"
)

// Config selects the analyses to run and their options. A field not
// defined in the config file is empty/zero in the struct; private
// fields are computed after initialization, not populated from yaml.
type Config struct {
	Options `yaml:",inline"`

	sourceFile string

	// Analyses lists the identifiers of the analyses to run, in request
	// order. Dependencies run first regardless of order.
	Analyses []string `yaml:"analyses"`
}

// Options holds the settings shared by all analyses.
type Options struct {
	// ReportsDir is the directory where reports will be stored. If the
	// config file does not specify a ReportsDir but sets ReportDot to
	// true, a directory is created next to the config file.
	ReportsDir string `yaml:"reports-dir"`

	// SolverStrategy selects the intraprocedural fixed-point driver,
	// "iterative" or "worklist". Default is "worklist".
	SolverStrategy string `yaml:"solver-strategy"`

	// ReportDot specifies whether the call graph should be written in
	// Graphviz dot form to a file callgraph.dot in ReportsDir.
	ReportDot bool `yaml:"report-dot"`

	// ReportRecursion specifies whether groups of mutually recursive
	// methods should be reported.
	ReportRecursion bool `yaml:"report-recursion"`

	// LogLevel controls the verbosity of the tool
	LogLevel int `yaml:"log-level"`

	// Suppress warnings
	SilenceWarn bool `yaml:"silence-warn"`
}

// NewDefault returns an empty default config.
func NewDefault() *Config {
	return &Config{
		sourceFile: "",
		Analyses:   nil,
		Options: Options{
			ReportsDir:      "",
			SolverStrategy:  StrategyWorklist,
			ReportDot:       false,
			ReportRecursion: false,
			LogLevel:        int(InfoLevel),
			SilenceWarn:     false,
		},
	}
}

// Load reads a configuration from a file.
func Load(filename string) (*Config, error) {
	cfg := NewDefault()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config file: %w", err)
	}
	cfg.sourceFile = filename

	// If logLevel has not been specified (i.e. it is 0) set the default to Info
	if cfg.LogLevel == 0 {
		cfg.LogLevel = int(InfoLevel)
	}
	if cfg.SolverStrategy == "" {
		cfg.SolverStrategy = StrategyWorklist
	}
	if cfg.SolverStrategy != StrategyIterative && cfg.SolverStrategy != StrategyWorklist {
		return nil, fmt.Errorf("unknown solver strategy %q", cfg.SolverStrategy)
	}
	if dup := firstDuplicate(cfg.Analyses); dup != "" {
		return nil, fmt.Errorf("analysis %q listed twice", dup)
	}

	if cfg.ReportDot && cfg.ReportsDir == "" {
		cfg.ReportsDir = path.Join(path.Dir(filename), "reports")
	}
	return cfg, nil
}

// SourceFile returns the file the config was loaded from, empty for a
// default config.
func (c *Config) SourceFile() string { return c.sourceFile }

// RequestsAnalysis reports whether id is listed in Analyses.
func (c *Config) RequestsAnalysis(id string) bool {
	return funcutil.Contains(c.Analyses, id)
}

func firstDuplicate(ids []string) string {
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			return id
		}
		seen[id] = true
	}
	return ""
}
