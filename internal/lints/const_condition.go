package lints

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/exprkit/boolsimp/internal/simplify"
	"github.com/exprkit/boolsimp/internal/syntax"
	tt "github.com/exprkit/boolsimp/internal/types"
)

const ruleConstCondition = "const-bool-condition"

// DetectConstBoolConditions reports if and for conditions whose truth
// value is already decided at compile time. The rule only reports;
// rewriting control flow around a dead branch is a job for a human.
func DetectConstBoolConditions(filename string, node *ast.File, fset *token.FileSet, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	ast.Inspect(node, func(n ast.Node) bool {
		var cond ast.Expr
		switch stmt := n.(type) {
		case *ast.IfStmt:
			cond = stmt.Cond
		case *ast.ForStmt:
			cond = stmt.Cond
		}
		if cond == nil {
			return true
		}

		arena := syntax.NewArena()
		root, ok := bridgeExpr(arena, cond)
		if !ok {
			return true
		}
		verdict := simplify.New(arena).Eval(root)
		if !verdict.Known() {
			return true
		}

		issues = append(issues, tt.Issue{
			Rule:     ruleConstCondition,
			Category: "logic",
			Filename: filename,
			Message:  fmt.Sprintf("condition `%s` is always %s", exprText(cond), verdict),
			Note:     "A branch guarded by a constant either always runs or never does; drop the guard or fix the condition.",
			Start:    fset.Position(cond.Pos()),
			End:      fset.Position(cond.End()),
			Severity: severity,
		})
		return true
	})

	return issues, nil
}
