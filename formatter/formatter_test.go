package formatter

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exprkit/boolsimp/internal"
	tt "github.com/exprkit/boolsimp/internal/types"
)

func TestGenerateFormattedIssue(t *testing.T) {
	t.Parallel()
	code := &internal.SourceCode{
		Lines: []string{
			"package main",
			"",
			"func decide(x bool) bool {",
			"\treturn x && true",
			"}",
		},
	}

	issues := []tt.Issue{
		{
			Rule:       "simplify-bool-expr",
			Category:   "style",
			Filename:   "decide.go",
			Start:      token.Position{Line: 4, Column: 9},
			End:        token.Position{Line: 4, Column: 18},
			Message:    "boolean expression can be simplified to `x`",
			Suggestion: "x",
			Note:       "One operand is decided at compile time, so the expression never needs to be spelled out in full.",
			Severity:   tt.SeverityWarning,
			Confidence: 1.0,
		},
	}

	expected := `warning: simplify-bool-expr
 --> decide.go:4:9
  |
4 | return x && true
  |        ~~~~~~~~~
  = boolean expression can be simplified to ` + "`x`" + `

Suggestion:
  |
4 | x
  |

Note: One operand is decided at compile time, so the expression never needs to be spelled out in full.

`

	result := GenerateFormattedIssue(issues, code)

	assert.Equal(t, expected, result, "formatted output does not match expected")
}

func TestGenerateFormattedIssue_NoSuggestion(t *testing.T) {
	t.Parallel()
	code := &internal.SourceCode{
		Lines: []string{
			"package main",
			"",
			"func run(ready bool) {",
			"\tif true || ready {",
			"\t}",
			"}",
		},
	}

	issues := []tt.Issue{
		{
			Rule:     "const-bool-condition",
			Category: "correctness",
			Filename: "guard.go",
			Start:    token.Position{Line: 4, Column: 5},
			End:      token.Position{Line: 4, Column: 18},
			Message:  "condition `true || ready` is always true",
			Severity: tt.SeverityError,
		},
	}

	expected := `error: const-bool-condition
 --> guard.go:4:5
  |
4 | if true || ready {
  |    ~~~~~~~~~~~~~
  = condition ` + "`true || ready`" + ` is always true

`

	result := GenerateFormattedIssue(issues, code)

	assert.Equal(t, expected, result, "formatted output does not match expected")
}

func TestGenerateFormattedIssue_ComplexityHotspot(t *testing.T) {
	t.Parallel()
	code := &internal.SourceCode{
		Lines: []string{
			"package main",
			"",
			"func tangled(a, b, c bool) int {",
			"\tif a && b || c {",
			"\t\treturn 1",
			"\t}",
			"\treturn 0",
			"}",
		},
	}

	issues := []tt.Issue{
		{
			Rule:     "complexity-hotspot",
			Category: "maintainability",
			Filename: "metrics.go",
			Start:    token.Position{Line: 3, Column: 1},
			End:      token.Position{Line: 3, Column: 1},
			Message:  "function tangled has cyclomatic complexity 12 (threshold 10)",
			Note:     "Heavily branched functions are where simplified conditions help most; consider splitting the function or flattening its conditionals.",
			Severity: tt.SeverityInfo,
		},
	}

	expected := `info: complexity-hotspot
 --> metrics.go:3:1
  |
3 | func tangled(a, b, c bool) int {
  | ~
  = function tangled has cyclomatic complexity 12 (threshold 10)
  | Cyclomatic complexity: tangled has cyclomatic complexity 12 (threshold 10)

Note: Heavily branched functions are where simplified conditions help most; consider splitting the function or flattening its conditionals.

`

	result := GenerateFormattedIssue(issues, code)

	assert.Equal(t, expected, result, "formatted output does not match expected")
}

func TestGenerateFormattedIssue_LineOutOfRange(t *testing.T) {
	t.Parallel()
	code := &internal.SourceCode{
		Lines: []string{
			"package main",
		},
	}

	issues := []tt.Issue{
		{
			Rule:     "simplify-bool-expr",
			Filename: "ghost.go",
			Start:    token.Position{Line: 99, Column: 1},
			End:      token.Position{Line: 99, Column: 4},
			Message:  "expression vanished from the file",
			Severity: tt.SeverityWarning,
		},
	}

	expected := `warning: simplify-bool-expr
  --> ghost.go:99:1
   |
   | expression vanished from the file

`

	result := GenerateFormattedIssue(issues, code)

	assert.Equal(t, expected, result, "out-of-range issues must still render a header and message")
}

func TestGenerateFormattedIssue_MultipleIssues(t *testing.T) {
	t.Parallel()
	code := &internal.SourceCode{
		Lines: []string{
			"package main",
			"",
			"func gate(open bool) bool {",
			"\tx := false && open",
			"\treturn x || true",
			"}",
		},
	}

	issues := []tt.Issue{
		{
			Rule:       "simplify-bool-expr",
			Filename:   "gate.go",
			Start:      token.Position{Line: 4, Column: 7},
			End:        token.Position{Line: 4, Column: 20},
			Message:    "boolean expression can be simplified to `false`",
			Suggestion: "false",
			Severity:   tt.SeverityWarning,
		},
		{
			Rule:       "simplify-bool-expr",
			Filename:   "gate.go",
			Start:      token.Position{Line: 5, Column: 9},
			End:        token.Position{Line: 5, Column: 18},
			Message:    "boolean expression can be simplified to `true`",
			Suggestion: "true",
			Severity:   tt.SeverityWarning,
		},
	}

	expected := `warning: simplify-bool-expr
 --> gate.go:4:7
  |
4 | x := false && open
  |      ~~~~~~~~~~~~~
  = boolean expression can be simplified to ` + "`false`" + `

Suggestion:
  |
4 | false
  |

warning: simplify-bool-expr
 --> gate.go:5:9
  |
5 | return x || true
  |        ~~~~~~~~~
  = boolean expression can be simplified to ` + "`true`" + `

Suggestion:
  |
5 | true
  |

`

	result := GenerateFormattedIssue(issues, code)

	assert.Equal(t, expected, result, "issues must render back to back in input order")
}

func TestFindCommonIndent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "tab indent",
			lines: []string{"\tif x {", "\t\treturn", "\t}"},
			want:  "\t",
		},
		{
			name:  "space indent",
			lines: []string{"    a", "      b"},
			want:  "    ",
		},
		{
			name:  "mixed indent shares nothing",
			lines: []string{"\ta", "    b"},
			want:  "",
		},
		{
			name:  "empty lines are skipped",
			lines: []string{"", "\ta", "", "\tb"},
			want:  "\t",
		},
		{
			name:  "no lines",
			lines: nil,
			want:  "",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, findCommonIndent(tc.lines))
		})
	}
}

func TestCalculateVisualColumn(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		line   string
		column int
		want   int
	}{
		{name: "plain text", line: "return x", column: 8, want: 7},
		{name: "leading tab jumps to tab stop", line: "\treturn x", column: 2, want: 8},
		{name: "tab then text", line: "\treturn x", column: 9, want: 15},
		{name: "column one is the left edge", line: "anything", column: 1, want: 0},
		{name: "negative column clamps to zero", line: "anything", column: -1, want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, calculateVisualColumn(tc.line, tc.column))
		})
	}
}
