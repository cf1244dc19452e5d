// Package analyzer adapts the boolean simplification rules to the
// go/analysis framework so they can run inside multichecker-style drivers
// alongside other analyzers.
package analyzer

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"github.com/exprkit/boolsimp/internal/lints"
	tt "github.com/exprkit/boolsimp/internal/types"
)

const doc = `report boolean expressions that constant folding and short-circuit reasoning can shrink

The analyzer flags expressions like "x && true" together with an equivalent
replacement, offered as a suggested fix, and separately flags if and for
conditions whose truth value is already decided at compile time.`

// Analyzer wraps the simplify-bool-expr and const-bool-condition rules.
var Analyzer = &analysis.Analyzer{
	Name: "boolsimp",
	Doc:  doc,
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		tokenFile := pass.Fset.File(file.Pos())
		if tokenFile == nil {
			continue
		}
		filename := tokenFile.Name()

		simplifiable, err := lints.DetectSimplifiableBoolExprs(filename, file, pass.Fset, tt.SeverityWarning)
		if err != nil {
			return nil, err
		}
		constant, err := lints.DetectConstBoolConditions(filename, file, pass.Fset, tt.SeverityWarning)
		if err != nil {
			return nil, err
		}

		for _, issue := range simplifiable {
			pass.Report(toDiagnostic(tokenFile, issue))
		}
		for _, issue := range constant {
			pass.Report(toDiagnostic(tokenFile, issue))
		}
	}
	return nil, nil
}

// toDiagnostic recovers token positions from the issue's byte offsets and
// carries the suggestion over as a suggested fix.
func toDiagnostic(file *token.File, issue tt.Issue) analysis.Diagnostic {
	d := analysis.Diagnostic{
		Pos:      file.Pos(issue.Start.Offset),
		End:      file.Pos(issue.End.Offset),
		Category: issue.Category,
		Message:  issue.Message,
	}
	if issue.Suggestion != "" {
		d.SuggestedFixes = []analysis.SuggestedFix{
			{
				Message: fmt.Sprintf("Replace with `%s`", issue.Suggestion),
				TextEdits: []analysis.TextEdit{
					{
						Pos:     d.Pos,
						End:     d.End,
						NewText: []byte(issue.Suggestion),
					},
				},
			},
		}
	}
	return d
}

// RunOnSource runs the analyzer over a single source string with a
// hand-built pass and converts the diagnostics back to issues. Drivers are
// overkill when the caller already has the source in memory.
func RunOnSource(src string) ([]tt.Issue, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "source.go", src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var issues []tt.Issue
	pass := &analysis.Pass{
		Analyzer: Analyzer,
		Fset:     fset,
		Files:    []*ast.File{file},
		Report: func(d analysis.Diagnostic) {
			issue := tt.Issue{
				Rule:     Analyzer.Name,
				Category: d.Category,
				Filename: "source.go",
				Message:  d.Message,
				Start:    fset.Position(d.Pos),
				End:      fset.Position(d.End),
			}
			if len(d.SuggestedFixes) > 0 && len(d.SuggestedFixes[0].TextEdits) > 0 {
				issue.Suggestion = string(d.SuggestedFixes[0].TextEdits[0].NewText)
			}
			issues = append(issues, issue)
		},
	}

	if _, err := Analyzer.Run(pass); err != nil {
		return nil, err
	}
	return issues, nil
}
