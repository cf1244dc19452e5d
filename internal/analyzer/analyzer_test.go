package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"
)

// TestAnalyzerSuggestedFixes drives the analyzer the way a real checker
// would and verifies both the diagnostics and the applied fixes against
// the golden file.
func TestAnalyzerSuggestedFixes(t *testing.T) {
	analysistest.RunWithSuggestedFixes(t, analysistest.TestData(), Analyzer, "a")
}

func TestAnalyzerReportsSimplifiableExpression(t *testing.T) {
	t.Parallel()
	src := `package main

func decide(x bool) bool {
	return x && true
}
`
	issues, err := RunOnSource(src)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	assert.Equal(t, "boolsimp", issues[0].Rule)
	assert.Contains(t, issues[0].Message, "can be simplified to `x`")
	assert.Equal(t, "x", issues[0].Suggestion)
	assert.Equal(t, 4, issues[0].Start.Line)
	assert.Equal(t, 9, issues[0].Start.Column)
}

func TestAnalyzerReportsConstantCondition(t *testing.T) {
	t.Parallel()
	src := `package main

func run(ready bool) bool {
	if true || ready {
		return true
	}
	return false
}
`
	issues, err := RunOnSource(src)
	require.NoError(t, err)
	require.Len(t, issues, 2)

	assert.Contains(t, issues[0].Message, "can be simplified to `true`")
	assert.Equal(t, "true", issues[0].Suggestion)

	assert.Equal(t, "logic", issues[1].Category)
	assert.Contains(t, issues[1].Message, "is always true")
	assert.Empty(t, issues[1].Suggestion)
}

func TestAnalyzerQuietOnCleanSource(t *testing.T) {
	t.Parallel()
	src := `package main

func choose(a, b bool) bool {
	if a && b {
		return a
	}
	return b
}
`
	issues, err := RunOnSource(src)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestAnalyzerRejectsBrokenSource(t *testing.T) {
	t.Parallel()
	_, err := RunOnSource("package main\n\nfunc {")
	assert.Error(t, err)
}
