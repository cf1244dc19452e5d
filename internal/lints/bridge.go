package lints

import (
	"go/ast"
	"go/token"

	"github.com/exprkit/boolsimp/internal/syntax"
)

// bridgeExpr converts a Go expression into an arena tree the simplifier
// understands. The conversion is total over the boolean skeleton and
// deliberately partial elsewhere: any construct we cannot both reason
// about and render back as valid Go makes the whole candidate fail with
// ok=false, and the rule simply skips it. Missing a candidate is fine;
// mangling one is not.
func bridgeExpr(a *syntax.Arena, e ast.Expr) (syntax.NodeID, bool) {
	switch e := e.(type) {
	case *ast.Ident:
		switch e.Name {
		case "true":
			return a.Bool(true), true
		case "false":
			return a.Bool(false), true
		}
		return a.Path(e.Name), true

	case *ast.BasicLit:
		return a.Lit(e.Value), true

	case *ast.ParenExpr:
		inner, ok := bridgeExpr(a, e.X)
		if !ok {
			return syntax.None, false
		}
		return a.Paren(inner), true

	case *ast.UnaryExpr:
		op, ok := bridgeUnaryOp(e.Op)
		if !ok {
			return syntax.None, false
		}
		operand, ok := bridgeExpr(a, e.X)
		if !ok {
			return syntax.None, false
		}
		return a.Unary(op, operand), true

	case *ast.StarExpr:
		operand, ok := bridgeExpr(a, e.X)
		if !ok {
			return syntax.None, false
		}
		return a.Unary(syntax.OpDeref, operand), true

	case *ast.BinaryExpr:
		op, ok := bridgeBinaryOp(e.Op)
		if !ok {
			return syntax.None, false
		}
		left, ok := bridgeExpr(a, e.X)
		if !ok {
			return syntax.None, false
		}
		right, ok := bridgeExpr(a, e.Y)
		if !ok {
			return syntax.None, false
		}
		return a.Binary(op, left, right), true

	case *ast.SelectorExpr:
		base, ok := bridgeExpr(a, e.X)
		if !ok {
			return syntax.None, false
		}
		return a.FieldAccess(base, e.Sel.Name), true

	case *ast.CallExpr:
		if e.Ellipsis.IsValid() {
			return syntax.None, false
		}
		callee, ok := calleeName(e.Fun)
		if !ok {
			return syntax.None, false
		}
		args := make([]syntax.NodeID, 0, len(e.Args))
		for _, arg := range e.Args {
			converted, ok := bridgeExpr(a, arg)
			if !ok {
				return syntax.None, false
			}
			args = append(args, converted)
		}
		return a.Call(callee, args...), true

	case *ast.IndexExpr:
		base, ok := bridgeExpr(a, e.X)
		if !ok {
			return syntax.None, false
		}
		index, ok := bridgeExpr(a, e.Index)
		if !ok {
			return syntax.None, false
		}
		return a.Index(base, index), true

	case *ast.CompositeLit:
		return bridgeCompositeLit(a, e)

	default:
		// Slices, type assertions, closures, generics: no safe model.
		return syntax.None, false
	}
}

// bridgeCompositeLit maps every Go composite literal, struct, slice, or
// map, onto a struct-literal node whose type text renders back verbatim.
func bridgeCompositeLit(a *syntax.Arena, e *ast.CompositeLit) (syntax.NodeID, bool) {
	if e.Type == nil {
		// A nested literal with an elided type cannot be rendered on
		// its own.
		return syntax.None, false
	}
	names := make([]string, 0, len(e.Elts))
	values := make([]syntax.NodeID, 0, len(e.Elts))
	for _, elt := range e.Elts {
		name := ""
		value := elt
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			name = exprText(kv.Key)
			value = kv.Value
		}
		converted, ok := bridgeExpr(a, value)
		if !ok {
			return syntax.None, false
		}
		names = append(names, name)
		values = append(values, converted)
	}
	return a.StructLit(exprText(e.Type), names, values), true
}

// calleeName flattens the callee of a call to text. Only plain names and
// selector chains qualify; a computed callee like f()() stays opaque.
func calleeName(fun ast.Expr) (string, bool) {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name, true
	case *ast.SelectorExpr:
		base, ok := calleeName(f.X)
		if !ok {
			return "", false
		}
		return base + "." + f.Sel.Name, true
	}
	return "", false
}

func bridgeUnaryOp(op token.Token) (syntax.UnaryOp, bool) {
	switch op {
	case token.NOT:
		return syntax.OpNot, true
	case token.SUB:
		return syntax.OpNeg, true
	case token.AND:
		return syntax.OpRef, true
	}
	return syntax.OpNoUnary, false
}

func bridgeBinaryOp(op token.Token) (syntax.BinaryOp, bool) {
	switch op {
	case token.LAND:
		return syntax.OpAndAnd, true
	case token.LOR:
		return syntax.OpOrOr, true
	case token.XOR:
		return syntax.OpXor, true
	case token.ADD:
		return syntax.OpAdd, true
	case token.SUB:
		return syntax.OpSub, true
	case token.MUL:
		return syntax.OpMul, true
	case token.QUO:
		return syntax.OpDiv, true
	case token.REM:
		return syntax.OpRem, true
	case token.AND:
		return syntax.OpBitAnd, true
	case token.OR:
		return syntax.OpBitOr, true
	case token.SHL:
		return syntax.OpShl, true
	case token.SHR:
		return syntax.OpShr, true
	case token.EQL:
		return syntax.OpEq, true
	case token.NEQ:
		return syntax.OpNe, true
	case token.LSS:
		return syntax.OpLt, true
	case token.LEQ:
		return syntax.OpLe, true
	case token.GTR:
		return syntax.OpGt, true
	case token.GEQ:
		return syntax.OpGe, true
	}
	return syntax.OpNoBinary, false
}
