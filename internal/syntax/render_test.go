package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(a *Arena) NodeID
		want  string
	}{
		{
			name:  "bool literal",
			build: func(a *Arena) NodeID { return a.Bool(true) },
			want:  "true",
		},
		{
			name:  "binary chain",
			build: func(a *Arena) NodeID { return a.And(a.Path("a"), a.Or(a.Path("b"), a.Path("c"))) },
			want:  "a && b || c",
		},
		{
			name:  "parens are explicit nodes",
			build: func(a *Arena) NodeID { return a.And(a.Path("a"), a.Paren(a.Or(a.Path("b"), a.Path("c")))) },
			want:  "a && (b || c)",
		},
		{
			name:  "unary",
			build: func(a *Arena) NodeID { return a.Not(a.Paren(a.And(a.Path("a"), a.Bool(false)))) },
			want:  "!(a && false)",
		},
		{
			name:  "ref mut spacing",
			build: func(a *Arena) NodeID { return a.Unary(OpRefMut, a.Path("buf")) },
			want:  "&mut buf",
		},
		{
			name:  "call and method call",
			build: func(a *Arena) NodeID { return a.MethodCall(a.Call("conn"), "close", a.Lit("1")) },
			want:  "conn().close(1)",
		},
		{
			name:  "field access and index",
			build: func(a *Arena) NodeID { return a.Index(a.FieldAccess(a.Path("s"), "items"), a.Lit("0")) },
			want:  "s.items[0]",
		},
		{
			name:  "array",
			build: func(a *Arena) NodeID { return a.Array(a.Lit("1"), a.Lit("2")) },
			want:  "[1, 2]",
		},
		{
			name:  "repeat array",
			build: func(a *Arena) NodeID { return a.RepeatArray(a.Bool(false), a.Lit("4")) },
			want:  "[false; 4]",
		},
		{
			name:  "tuple",
			build: func(a *Arena) NodeID { return a.Tuple(a.Path("a"), a.Path("b")) },
			want:  "(a, b)",
		},
		{
			name:  "single element tuple keeps comma",
			build: func(a *Arena) NodeID { return a.Tuple(a.Path("a")) },
			want:  "(a,)",
		},
		{
			name: "struct literal",
			build: func(a *Arena) NodeID {
				return a.StructLit("Point", []string{"x", "y"}, []NodeID{a.Lit("1"), a.Lit("2")})
			},
			want: "Point{x: 1, y: 2}",
		},
		{
			name: "struct literal with spread",
			build: func(a *Arena) NodeID {
				return a.StructLitSpread("Point", []string{"x"}, []NodeID{a.Lit("1")}, a.Path("origin"))
			},
			want: "Point{x: 1, ..origin}",
		},
		{
			name:  "positional struct literal",
			build: func(a *Arena) NodeID { return a.StructLit("[]int", nil, []NodeID{a.Lit("1"), a.Lit("2")}) },
			want:  "[]int{1, 2}",
		},
		{
			name:  "cast",
			build: func(a *Arena) NodeID { return a.Cast(a.Path("n"), "u64") },
			want:  "n as u64",
		},
		{
			name:  "try",
			build: func(a *Arena) NodeID { return a.Try(a.Call("parse", a.Path("s"))) },
			want:  "parse(s)?",
		},
		{
			name:  "range with open ends",
			build: func(a *Arena) NodeID { return a.Range(None, a.Lit("10")) },
			want:  "..10",
		},
		{
			name:  "return with value",
			build: func(a *Arena) NodeID { return a.Return(a.Bool(true)) },
			want:  "return true",
		},
		{
			name:  "bare break",
			build: func(a *Arena) NodeID { return a.Break(None) },
			want:  "break",
		},
		{
			name:  "macro",
			build: func(a *Arena) NodeID { return a.Macro("assert", a.Path("ok")) },
			want:  "assert!(ok)",
		},
		{
			name:  "lambda",
			build: func(a *Arena) NodeID { return a.Lambda("x", a.Binary(OpAdd, a.Path("x"), a.Lit("1"))) },
			want:  "|x| x + 1",
		},
		{
			name:  "missing operand",
			build: func(a *Arena) NodeID { return a.Binary(OpAndAnd, a.Path("a"), None) },
			want:  "a && <missing>",
		},
		{
			name:  "unit",
			build: func(a *Arena) NodeID { return a.Unit() },
			want:  "()",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := NewArena()
			assert.Equal(t, tt.want, a.Render(tt.build(a)))
		})
	}
}

func TestRenderAfterRewrite(t *testing.T) {
	t.Parallel()

	a := NewArena()
	keep := a.Call("ready")
	and := a.And(a.Bool(true), keep)
	stmt := a.Stmt(and)

	assert.Equal(t, "true && ready();", a.Render(stmt))

	if err := a.Replace(and, keep); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "ready();", a.Render(stmt))
}
