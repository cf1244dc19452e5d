package internal

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"strings"
	"sync"

	"github.com/exprkit/boolsimp/internal/lints"
	"github.com/exprkit/boolsimp/internal/nolint"
	tt "github.com/exprkit/boolsimp/internal/types"
)

// Engine owns the rule set and runs it over files.
type Engine struct {
	ignoredRules map[string]bool
	nolintMgr    *nolint.Manager
	rules        map[string]LintRule
}

// NewEngine creates an engine with every known rule registered, then
// applies the per-rule config on top.
func NewEngine(rules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{}
	engine.applyRules(rules)
	return engine, nil
}

type ruleConstructor func() LintRule

type ruleMap map[string]ruleConstructor

var allRuleConstructors = ruleMap{
	"simplify-bool-expr":   NewSimplifyBoolExprRule,
	"const-bool-condition": NewConstConditionRule,
	"complexity-hotspot":   NewComplexityHotspotRule,
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) {
	e.rules = make(map[string]LintRule)
	e.registerAllRules()

	for key, cfg := range rules {
		rule := e.rules[key]
		if rule == nil {
			// Unknown rule names are tolerated so a shared config can
			// carry entries for several tools.
			continue
		}
		if cfg.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
		}
		rule.SetSeverity(cfg.Severity)
		if hotspot, ok := rule.(*ComplexityHotspotRule); ok {
			hotspot.SetThreshold(cfg.Threshold)
		}
	}
}

func (e *Engine) registerAllRules() {
	for key, construct := range allRuleConstructors {
		e.rules[key] = construct()
	}
}

// IgnoreRule disables a rule by name for this engine.
func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// Run applies every enabled rule to the file and merges their findings.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	node, fset, err := lints.ParseFile(filename, nil)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}
	return e.runRules(filename, node, fset)
}

// RunSource behaves like Run for source that only exists in memory.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	node, fset, err := lints.ParseFile("", source)
	if err != nil {
		return nil, fmt.Errorf("error parsing content: %w", err)
	}
	return e.runRules("", node, fset)
}

// runRules fans the rules out one goroutine each. Rules only read the
// shared AST, so the merge slice is the single point of coordination.
func (e *Engine) runRules(filename string, node *ast.File, fset *token.FileSet) ([]tt.Issue, error) {
	e.nolintMgr = nolint.ParseComments(node, fset)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		allIssues []tt.Issue
		errs      []error
	)
	for _, rule := range e.rules {
		if e.ignoredRules[rule.Name()] {
			continue
		}
		wg.Add(1)
		go func(r LintRule) {
			defer wg.Done()
			issues, err := r.Check(filename, node, fset)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("rule %s: %w", r.Name(), err))
				return
			}
			allIssues = append(allIssues, e.filterSuppressed(issues)...)
		}(rule)
	}
	wg.Wait()

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return allIssues, nil
}

// filterSuppressed drops issues that a suppression comment covers.
func (e *Engine) filterSuppressed(issues []tt.Issue) []tt.Issue {
	if e.nolintMgr == nil {
		return issues
	}
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		pos := token.Position{
			Filename: issue.Filename,
			Line:     issue.Start.Line,
		}
		if !e.nolintMgr.IsSuppressed(pos, issue.Rule) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// SourceCode stores the content of a source code file as lines.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads a file and returns it as a SourceCode struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	return &SourceCode{Lines: lines}, nil
}
