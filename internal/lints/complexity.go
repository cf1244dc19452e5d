package lints

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/fzipp/gocyclo"

	tt "github.com/exprkit/boolsimp/internal/types"
)

const ruleComplexityHotspot = "complexity-hotspot"

// DefaultComplexityThreshold flags only functions whose branching is well
// past what a reader can hold at once.
const DefaultComplexityThreshold = 10

// DetectComplexityHotspots flags functions whose cyclomatic complexity
// exceeds the threshold. Dense branching is where hand-reduced boolean
// conditions pay off most, so the rule points the other rules' users at
// the right functions.
func DetectComplexityHotspots(filename string, node *ast.File, fset *token.FileSet, threshold int, severity tt.Severity) ([]tt.Issue, error) {
	if threshold <= 0 {
		threshold = DefaultComplexityThreshold
	}

	stats := gocyclo.AnalyzeASTFile(node, fset, nil)

	var issues []tt.Issue
	for _, stat := range stats {
		if stat.Complexity <= threshold {
			continue
		}
		issues = append(issues, tt.Issue{
			Rule:     ruleComplexityHotspot,
			Category: "maintainability",
			Filename: filename,
			Message:  fmt.Sprintf("function %s has cyclomatic complexity %d (threshold %d)", stat.FuncName, stat.Complexity, threshold),
			Note:     "Heavily branched functions are where simplified conditions help most; consider splitting the function or flattening its conditionals.",
			Start:    stat.Pos,
			End:      stat.Pos,
			Severity: severity,
		})
	}

	return issues, nil
}
