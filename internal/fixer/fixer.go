package fixer

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"sort"
	"strings"

	tt "github.com/exprkit/boolsimp/internal/types"
)

// Fixer applies issue suggestions to source files in place.
type Fixer struct {
	DryRun        bool
	MinConfidence float64 // issues below this confidence are left alone
}

func New(dryRun bool, threshold float64) *Fixer {
	return &Fixer{
		DryRun:        dryRun,
		MinConfidence: threshold,
	}
}

// Fix splices each issue's suggestion over its source span and rewrites the
// file. Issues are applied back to front so earlier offsets stay valid, and
// imports orphaned by a rewrite are pruned before the file is formatted.
// The file is only written if the patched source still parses.
func (f *Fixer) Fix(filename string, issues []tt.Issue) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	sort.Slice(issues, func(i, j int) bool {
		return issues[i].End.Offset > issues[j].End.Offset
	})

	applied := 0
	limit := len(content)
	for _, issue := range issues {
		if issue.Suggestion == "" || issue.Confidence < f.MinConfidence {
			continue
		}

		start, end := issue.Start.Offset, issue.End.Offset
		if start < 0 || end > len(content) || start > end {
			return fmt.Errorf("%s: issue %q has offsets outside the file", filename, issue.Rule)
		}
		if end > limit {
			// Overlaps a fix already applied further right. The outer
			// rewrite subsumes this one; a rerun sees fresh positions.
			continue
		}

		if f.DryRun {
			fmt.Printf("Would fix %s at line %d: %s\n", filename, issue.Start.Line, issue.Message)
			fmt.Printf("Suggestion:\n%s\n", issue.Suggestion)
			continue
		}

		var buf bytes.Buffer
		buf.Write(content[:start])
		buf.WriteString(issue.Suggestion)
		buf.Write(content[end:])
		content = buf.Bytes()

		limit = start
		applied++
	}

	if f.DryRun || applied == 0 {
		return nil
	}

	fset := token.NewFileSet()
	astFile, err := parser.ParseFile(fset, filename, content, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("patched source does not parse, leaving %s untouched: %w", filename, err)
	}

	if removed := PruneUnusedImports(fset, astFile); len(removed) > 0 {
		fmt.Printf("Removed unused imports in %s: %s\n", filename, strings.Join(removed, ", "))
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, astFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Printf("Fixed %d issues in %s\n", applied, filename)
	return nil
}
