package lints

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/exprkit/boolsimp/internal/simplify"
	"github.com/exprkit/boolsimp/internal/syntax"
	tt "github.com/exprkit/boolsimp/internal/types"
)

const ruleSimplifyBoolExpr = "simplify-bool-expr"

// DetectSimplifiableBoolExprs reports boolean expressions that constant
// folding and short-circuit reasoning can shrink. Each issue carries the
// fully reduced expression as its suggestion, verified value-equivalent to
// the original before it is offered.
func DetectSimplifiableBoolExprs(filename string, node *ast.File, fset *token.FileSet, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	var walkErr error

	ast.Inspect(node, func(n ast.Node) bool {
		if walkErr != nil {
			return false
		}
		expr, ok := n.(ast.Expr)
		if !ok || !isBoolCandidate(expr) {
			return true
		}
		issue, found, bridged, err := checkBoolExpr(expr, filename, fset, severity)
		if err != nil {
			walkErr = err
			return false
		}
		if found {
			issues = append(issues, issue)
			return false
		}
		// A bridged candidate was already scanned in full by the
		// reducer, nested offers included. An unbridged one may still
		// hide corners we can model, so keep descending.
		return !bridged
	})

	if walkErr != nil {
		return nil, walkErr
	}
	return issues, nil
}

// isBoolCandidate keeps the expensive path off everything that is not a
// boolean operator expression.
func isBoolCandidate(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.BinaryExpr:
		return e.Op == token.LAND || e.Op == token.LOR
	case *ast.UnaryExpr:
		return e.Op == token.NOT
	}
	return false
}

func checkBoolExpr(expr ast.Expr, filename string, fset *token.FileSet, severity tt.Severity) (tt.Issue, bool, bool, error) {
	arena := syntax.NewArena()
	root, ok := bridgeExpr(arena, expr)
	if !ok {
		return tt.Issue{}, false, false, nil
	}
	arena.Stmt(root)

	reducer := simplify.New(arena)
	final, steps, err := reducer.Reduce(root)
	if err != nil {
		return tt.Issue{}, false, true, fmt.Errorf("%s: %s: %w", ruleSimplifyBoolExpr, exprText(expr), err)
	}
	if steps == 0 {
		return tt.Issue{}, false, true, nil
	}
	suggestion := arena.Render(final)

	// Gate the rewrite on value equivalence against a fresh bridge of
	// the untouched source. A failure here is a defect in the reducer
	// and must surface, not be swallowed.
	ref := syntax.NewArena()
	refRoot, ok := bridgeExpr(ref, expr)
	if !ok {
		return tt.Issue{}, false, true, fmt.Errorf("%s: %s bridged once but not twice", ruleSimplifyBoolExpr, exprText(expr))
	}
	confidence := 1.0
	switch simplify.Equivalent(ref, refRoot, arena, final) {
	case simplify.True:
	case simplify.Unknown:
		confidence = 0.9
	case simplify.False:
		return tt.Issue{}, false, true, fmt.Errorf("%s: rewrite %q does not preserve the value of %q",
			ruleSimplifyBoolExpr, suggestion, exprText(expr))
	}

	issue := tt.Issue{
		Rule:       ruleSimplifyBoolExpr,
		Category:   "style",
		Filename:   filename,
		Message:    fmt.Sprintf("boolean expression can be simplified to `%s`", suggestion),
		Suggestion: suggestion,
		Note:       noteForSteps(steps),
		Start:      fset.Position(expr.Pos()),
		End:        fset.Position(expr.End()),
		Severity:   severity,
		Confidence: confidence,
	}
	return issue, true, true, nil
}

func noteForSteps(steps int) string {
	if steps == 1 {
		return "One operand is decided at compile time, so the expression never needs to be spelled out in full."
	}
	return fmt.Sprintf("%d operands are decided at compile time; short-circuit rules collapse the rest.", steps)
}
