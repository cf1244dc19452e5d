package simplify

import "github.com/exprkit/boolsimp/internal/syntax"

// Eval computes the compile-time truth value of an expression. It folds
// constants through parentheses, logical negation, and the boolean binary
// operators, honoring short-circuit rules: a conjunction with a false left
// operand is False no matter what the right operand is or does. Every
// other construct, including a bare true literal buried in an
// uninterpreted operator, evaluates to Unknown.
func (s *Simplifier) Eval(id syntax.NodeID) Truth {
	a := s.arena
	switch a.Kind(id) {
	case syntax.KindLiteral:
		if v, ok := a.BoolLit(id); ok {
			return TruthOf(v)
		}
		return Unknown
	case syntax.KindParen:
		return s.Eval(a.Inner(id))
	case syntax.KindUnary:
		if a.UnaryOp(id) != syntax.OpNot {
			return Unknown
		}
		return s.Eval(a.Operand(id)).Not()
	case syntax.KindBinary:
		switch a.BinaryOp(id) {
		case syntax.OpAndAnd:
			return s.evalAnd(a.Left(id), a.Right(id))
		case syntax.OpOrOr:
			return s.evalOr(a.Left(id), a.Right(id))
		case syntax.OpXor:
			return s.evalXor(a.Left(id), a.Right(id))
		}
		return Unknown
	default:
		return Unknown
	}
}

// evalAnd is short-circuit aware: False on the left decides the whole
// expression even when the right operand is absent or opaque.
func (s *Simplifier) evalAnd(left, right syntax.NodeID) Truth {
	switch s.Eval(left) {
	case False:
		return False
	case True:
		if right == syntax.None {
			return Unknown
		}
		return s.Eval(right)
	}
	return Unknown
}

func (s *Simplifier) evalOr(left, right syntax.NodeID) Truth {
	switch s.Eval(left) {
	case True:
		return True
	case False:
		if right == syntax.None {
			return Unknown
		}
		return s.Eval(right)
	}
	return Unknown
}

// evalXor never short-circuits; it needs both sides.
func (s *Simplifier) evalXor(left, right syntax.NodeID) Truth {
	lv := s.Eval(left)
	if !lv.Known() {
		return Unknown
	}
	rv := s.Eval(right)
	if !rv.Known() {
		return Unknown
	}
	return TruthOf(lv != rv)
}
