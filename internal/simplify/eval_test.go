package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exprkit/boolsimp/internal/syntax"
)

func TestEval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(a *syntax.Arena) syntax.NodeID
		want  Truth
	}{
		{
			name:  "true literal",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Bool(true) },
			want:  True,
		},
		{
			name:  "false literal",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Bool(false) },
			want:  False,
		},
		{
			name:  "non-bool literal",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Lit("1") },
			want:  Unknown,
		},
		{
			name:  "name",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Path("flag") },
			want:  Unknown,
		},
		{
			name:  "parens fold through",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Paren(a.Paren(a.Bool(true))) },
			want:  True,
		},
		{
			name:  "double negation",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Not(a.Not(a.Bool(true))) },
			want:  True,
		},
		{
			name:  "negation of unknown",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Not(a.Path("x")) },
			want:  Unknown,
		},
		{
			name:  "negation without operand",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Not(syntax.None) },
			want:  Unknown,
		},
		{
			name:  "non-logical unary",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Unary(syntax.OpNeg, a.Bool(true)) },
			want:  Unknown,
		},
		{
			name:  "and of constants",
			build: func(a *syntax.Arena) syntax.NodeID { return a.And(a.Bool(true), a.Bool(false)) },
			want:  False,
		},
		{
			name:  "short-circuit and hides an effectful right",
			build: func(a *syntax.Arena) syntax.NodeID { return a.And(a.Bool(false), a.Call("launch")) },
			want:  False,
		},
		{
			name:  "true and unknown",
			build: func(a *syntax.Arena) syntax.NodeID { return a.And(a.Bool(true), a.Path("x")) },
			want:  Unknown,
		},
		{
			name:  "and with missing right undecided",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Binary(syntax.OpAndAnd, a.Bool(true), syntax.None) },
			want:  Unknown,
		},
		{
			name:  "and with missing right decided by left",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Binary(syntax.OpAndAnd, a.Bool(false), syntax.None) },
			want:  False,
		},
		{
			name:  "short-circuit or hides an effectful right",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Or(a.Bool(true), a.Call("launch")) },
			want:  True,
		},
		{
			name:  "or of falses",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Or(a.Bool(false), a.Bool(false)) },
			want:  False,
		},
		{
			name:  "xor of constants",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Xor(a.Bool(true), a.Bool(false)) },
			want:  True,
		},
		{
			name:  "xor of equal constants",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Xor(a.Bool(true), a.Bool(true)) },
			want:  False,
		},
		{
			name:  "xor never short-circuits",
			build: func(a *syntax.Arena) syntax.NodeID { return a.Xor(a.Bool(true), a.Path("x")) },
			want:  Unknown,
		},
		{
			name: "comparisons stay opaque",
			build: func(a *syntax.Arena) syntax.NodeID {
				return a.And(
					a.Paren(a.Binary(syntax.OpEq, a.Lit("1"), a.Lit("1"))),
					a.Paren(a.Binary(syntax.OpEq, a.Lit("2"), a.Lit("2"))),
				)
			},
			want: Unknown,
		},
		{
			name: "constant subtree inside unknown context",
			build: func(a *syntax.Arena) syntax.NodeID {
				return a.And(a.Path("x"), a.Paren(a.Or(a.Bool(true), a.Path("y"))))
			},
			want: Unknown,
		},
		{
			name:  "if is not folded",
			build: func(a *syntax.Arena) syntax.NodeID { return a.If(a.Bool(true), a.Block(), syntax.None) },
			want:  Unknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := syntax.NewArena()
			s := New(a)
			assert.Equal(t, tt.want, s.Eval(tt.build(a)))
		})
	}
}

func TestTruth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Unknown, Truth(0), "zero value must be Unknown")
	assert.True(t, True.Known())
	assert.True(t, False.Known())
	assert.False(t, Unknown.Known())
	assert.Equal(t, False, True.Not())
	assert.Equal(t, True, False.Not())
	assert.Equal(t, Unknown, Unknown.Not())
	assert.Equal(t, True, TruthOf(true))
	assert.Equal(t, False, TruthOf(false))
	assert.Equal(t, "unknown", Unknown.String())
}
