package internal

import (
	"go/ast"
	"go/token"

	"github.com/exprkit/boolsimp/internal/lints"
	tt "github.com/exprkit/boolsimp/internal/types"
)

// LintRule is implemented by each rule as its own struct.
type LintRule interface {
	// Check runs the rule on one parsed file and returns its findings.
	Check(filename string, node *ast.File, fset *token.FileSet) ([]tt.Issue, error)

	// Name returns the rule's config key.
	Name() string

	// Severity returns the severity findings are reported at.
	Severity() tt.Severity

	// SetSeverity overrides the rule's default severity.
	SetSeverity(tt.Severity)
}

// SimplifyBoolExprRule suggests reduced forms of boolean expressions.
type SimplifyBoolExprRule struct {
	severity tt.Severity
}

func NewSimplifyBoolExprRule() LintRule {
	return &SimplifyBoolExprRule{severity: tt.SeverityWarning}
}

func (r *SimplifyBoolExprRule) Check(filename string, node *ast.File, fset *token.FileSet) ([]tt.Issue, error) {
	return lints.DetectSimplifiableBoolExprs(filename, node, fset, r.severity)
}

func (r *SimplifyBoolExprRule) Name() string { return "simplify-bool-expr" }

func (r *SimplifyBoolExprRule) Severity() tt.Severity { return r.severity }

func (r *SimplifyBoolExprRule) SetSeverity(s tt.Severity) { r.severity = s }

// ConstConditionRule reports branch conditions that are decided at
// compile time.
type ConstConditionRule struct {
	severity tt.Severity
}

func NewConstConditionRule() LintRule {
	return &ConstConditionRule{severity: tt.SeverityWarning}
}

func (r *ConstConditionRule) Check(filename string, node *ast.File, fset *token.FileSet) ([]tt.Issue, error) {
	return lints.DetectConstBoolConditions(filename, node, fset, r.severity)
}

func (r *ConstConditionRule) Name() string { return "const-bool-condition" }

func (r *ConstConditionRule) Severity() tt.Severity { return r.severity }

func (r *ConstConditionRule) SetSeverity(s tt.Severity) { r.severity = s }

// ComplexityHotspotRule points at functions branching hard enough that
// condition cleanups matter most there.
type ComplexityHotspotRule struct {
	severity  tt.Severity
	threshold int
}

func NewComplexityHotspotRule() LintRule {
	return &ComplexityHotspotRule{
		severity:  tt.SeverityInfo,
		threshold: lints.DefaultComplexityThreshold,
	}
}

func (r *ComplexityHotspotRule) Check(filename string, node *ast.File, fset *token.FileSet) ([]tt.Issue, error) {
	return lints.DetectComplexityHotspots(filename, node, fset, r.threshold, r.severity)
}

func (r *ComplexityHotspotRule) Name() string { return "complexity-hotspot" }

func (r *ComplexityHotspotRule) Severity() tt.Severity { return r.severity }

func (r *ComplexityHotspotRule) SetSeverity(s tt.Severity) { r.severity = s }

// SetThreshold overrides the complexity limit; values at or below zero
// keep the default.
func (r *ComplexityHotspotRule) SetThreshold(n int) {
	if n > 0 {
		r.threshold = n
	}
}
