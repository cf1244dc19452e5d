package fixer

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/exprkit/boolsimp/internal/types"
)

const confidenceThreshold = 0.8

// fixSpec locates a fix by the exact source text it replaces, so fixtures
// stay readable and offsets never drift out of sync with the input.
type fixSpec struct {
	target     string
	suggestion string
	confidence float64
}

func TestFixer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fixes    []fixSpec
		expected string
		dryRun   bool
		wantErr  bool
	}{
		{
			name: "replaces a redundant operand",
			input: `package main

func decide(x bool) bool {
	return x && true
}
`,
			fixes: []fixSpec{
				{target: "x && true", suggestion: "x", confidence: 1.0},
			},
			expected: `package main

func decide(x bool) bool {
	return x
}
`,
		},
		{
			name: "applies multiple fixes in one pass",
			input: `package main

func gates(a, b bool) (bool, bool) {
	x := a || false
	y := true && b
	return x, y
}
`,
			fixes: []fixSpec{
				{target: "a || false", suggestion: "a", confidence: 1.0},
				{target: "true && b", suggestion: "b", confidence: 1.0},
			},
			expected: `package main

func gates(a, b bool) (bool, bool) {
	x := a
	y := b
	return x, y
}
`,
		},
		{
			name: "keeps surrounding statement text intact",
			input: `package main

func pick(a, b, c bool) bool {
	if a && (b || true) {
		return c
	}
	return !c
}
`,
			fixes: []fixSpec{
				{target: "a && (b || true)", suggestion: "a", confidence: 1.0},
			},
			expected: `package main

func pick(a, b, c bool) bool {
	if a {
		return c
	}
	return !c
}
`,
		},
		{
			name: "skips fixes below the confidence threshold",
			input: `package main

func decide(x bool) bool {
	return x && true
}
`,
			fixes: []fixSpec{
				{target: "x && true", suggestion: "x", confidence: 0.5},
			},
			expected: `package main

func decide(x bool) bool {
	return x && true
}
`,
		},
		{
			name: "dry run leaves the file untouched",
			input: `package main

func decide(x bool) bool {
	return x && true
}
`,
			fixes: []fixSpec{
				{target: "x && true", suggestion: "x", confidence: 1.0},
			},
			expected: `package main

func decide(x bool) bool {
	return x && true
}
`,
			dryRun: true,
		},
		{
			name: "prunes an import orphaned by the fix",
			input: `package main

import "strings"

func check(s string) bool {
	return false && strings.Contains(s, "x")
}
`,
			fixes: []fixSpec{
				{target: `false && strings.Contains(s, "x")`, suggestion: "false", confidence: 1.0},
			},
			expected: `package main

func check(s string) bool {
	return false
}
`,
		},
		{
			name: "overlapping fixes apply the outermost only",
			input: `package main

func keep(x, y bool) bool {
	return x && (y || true)
}
`,
			fixes: []fixSpec{
				{target: "x && (y || true)", suggestion: "x", confidence: 1.0},
				{target: "y || true", suggestion: "true", confidence: 1.0},
			},
			expected: `package main

func keep(x, y bool) bool {
	return x
}
`,
		},
		{
			name: "rejects a suggestion that does not parse",
			input: `package main

func decide(x bool) bool {
	return x && true
}
`,
			fixes: []fixSpec{
				{target: "x && true", suggestion: "&& &&", confidence: 1.0},
			},
			expected: `package main

func decide(x bool) bool {
	return x && true
}
`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runFixCase(t, tc.input, tc.fixes, tc.expected, tc.dryRun, tc.wantErr)
		})
	}
}

func runFixCase(t *testing.T, input string, fixes []fixSpec, expected string, dryRun bool, wantErr bool) {
	t.Helper()
	testFile := filepath.Join(t.TempDir(), "test.go")
	require.NoError(t, os.WriteFile(testFile, []byte(input), 0o644))

	issues := make([]tt.Issue, 0, len(fixes))
	for _, fx := range fixes {
		start, end := spanOf(t, input, fx.target)
		issues = append(issues, tt.Issue{
			Rule:       "simplify-bool-expr",
			Filename:   testFile,
			Message:    fmt.Sprintf("boolean expression can be simplified to `%s`", fx.suggestion),
			Suggestion: fx.suggestion,
			Start:      start,
			End:        end,
			Confidence: fx.confidence,
		})
	}

	fixer := New(dryRun, confidenceThreshold)
	err := fixer.Fix(testFile, issues)
	if wantErr {
		require.Error(t, err)
	} else {
		require.NoError(t, err)
	}

	content, err := os.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, expected, string(content))
}

// spanOf finds the first occurrence of target in src and returns its span.
// Fixtures must make the target unambiguous.
func spanOf(t *testing.T, src, target string) (token.Position, token.Position) {
	t.Helper()
	off := strings.Index(src, target)
	require.GreaterOrEqual(t, off, 0, "target %q not found in fixture", target)
	require.Equal(t, off, strings.LastIndex(src, target), "target %q is ambiguous in fixture", target)

	line := 1 + strings.Count(src[:off], "\n")
	start := token.Position{Line: line, Offset: off}
	end := token.Position{
		Line:   line + strings.Count(target, "\n"),
		Offset: off + len(target),
	}
	return start, end
}

func BenchmarkFix(b *testing.B) {
	input := `package main

func decide(x bool) bool {
	return x && true
}
`
	tmpDir, err := os.MkdirTemp("", "fixer-benchmark")
	require.NoError(b, err)
	defer os.RemoveAll(tmpDir)

	testFile := filepath.Join(tmpDir, "test.go")

	off := strings.Index(input, "x && true")
	issues := []tt.Issue{
		{
			Rule:       "simplify-bool-expr",
			Filename:   testFile,
			Message:    "boolean expression can be simplified to `x`",
			Suggestion: "x",
			Start:      token.Position{Line: 4, Offset: off},
			End:        token.Position{Line: 4, Offset: off + len("x && true")},
			Confidence: 1.0,
		},
	}

	fixer := New(false, confidenceThreshold)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		require.NoError(b, os.WriteFile(testFile, []byte(input), 0o644))
		b.StartTimer()

		require.NoError(b, fixer.Fix(testFile, issues))
	}
}
