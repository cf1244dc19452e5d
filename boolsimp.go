// Package boolsimp wires the boolean simplification rules into a lint
// engine, with configuration, batch processing, and the autofix pipeline
// shared by the CLI and by library users.
package boolsimp

import (
	"github.com/exprkit/boolsimp/internal"
	tt "github.com/exprkit/boolsimp/internal/types"
)

// LintEngine is the surface the processing helpers need. internal.Engine
// implements it; tests substitute mocks.
type LintEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
	IgnoreRule(rule string)
}

// New builds an engine from the configuration at configPath. An empty path
// falls back to the default location, and a missing default is fine: every
// rule runs at its default severity.
func New(configPath string) (*internal.Engine, error) {
	config, err := ParseConfig(configPath)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(config)
}

// NewFromConfig builds an engine from an already-loaded configuration.
func NewFromConfig(config Config) (*internal.Engine, error) {
	return internal.NewEngine(config.Rules)
}

// NewComplexityEngine builds an engine that runs only the complexity
// hotspot rule, for standalone complexity analysis.
func NewComplexityEngine(threshold int) (*internal.Engine, error) {
	return internal.NewEngine(map[string]tt.ConfigRule{
		"simplify-bool-expr":   {Severity: tt.SeverityOff},
		"const-bool-condition": {Severity: tt.SeverityOff},
		"complexity-hotspot":   {Severity: tt.SeverityInfo, Threshold: threshold},
	})
}
