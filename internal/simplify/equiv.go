package simplify

import "github.com/exprkit/boolsimp/internal/syntax"

// maxEquivAtoms bounds truth-table verification. Expressions with more
// distinct opaque atoms than this come back Unknown instead of burning
// 2^n evaluations.
const maxEquivAtoms = 10

// Equivalent checks whether two expressions, possibly in different arenas,
// compute the same boolean for every assignment of truth values to their
// opaque atoms. Atoms are keyed by rendered text, so two occurrences of
// the same subexpression share a value, which matches how a reader would
// judge the rewrite.
//
// The check covers values only. Side effects are the purity analysis's
// business, not this one's. Unknown means the check could not run (too
// many atoms, or an expression with a hole in it), never that it ran and
// was inconclusive.
func Equivalent(aa *syntax.Arena, x syntax.NodeID, ba *syntax.Arena, y syntax.NodeID) Truth {
	var order []string
	seen := make(map[string]int)
	collectAtoms(aa, x, seen, &order)
	collectAtoms(ba, y, seen, &order)
	if len(order) > maxEquivAtoms {
		return Unknown
	}

	env := make(map[string]Truth, len(order))
	for mask := 0; mask < 1<<len(order); mask++ {
		for i, atom := range order {
			env[atom] = TruthOf(mask&(1<<i) != 0)
		}
		vx := evalUnder(aa, x, env)
		vy := evalUnder(ba, y, env)
		if !vx.Known() || !vy.Known() {
			return Unknown
		}
		if vx != vy {
			return False
		}
	}
	return True
}

// collectAtoms walks the boolean skeleton of an expression and records
// every maximal opaque subexpression as an atom.
func collectAtoms(a *syntax.Arena, id syntax.NodeID, seen map[string]int, order *[]string) {
	if id == syntax.None {
		return
	}
	switch a.Kind(id) {
	case syntax.KindLiteral:
		if _, ok := a.BoolLit(id); ok {
			return
		}
	case syntax.KindParen:
		collectAtoms(a, a.Inner(id), seen, order)
		return
	case syntax.KindUnary:
		if a.UnaryOp(id) == syntax.OpNot {
			collectAtoms(a, a.Operand(id), seen, order)
			return
		}
	case syntax.KindBinary:
		switch a.BinaryOp(id) {
		case syntax.OpAndAnd, syntax.OpOrOr, syntax.OpXor:
			collectAtoms(a, a.Left(id), seen, order)
			collectAtoms(a, a.Right(id), seen, order)
			return
		}
	}
	key := a.Render(id)
	if _, ok := seen[key]; !ok {
		seen[key] = len(*order)
		*order = append(*order, key)
	}
}

// evalUnder evaluates the boolean skeleton with atoms bound by env.
// Missing operands surface as Unknown.
func evalUnder(a *syntax.Arena, id syntax.NodeID, env map[string]Truth) Truth {
	if id == syntax.None {
		return Unknown
	}
	switch a.Kind(id) {
	case syntax.KindLiteral:
		if v, ok := a.BoolLit(id); ok {
			return TruthOf(v)
		}
	case syntax.KindParen:
		return evalUnder(a, a.Inner(id), env)
	case syntax.KindUnary:
		if a.UnaryOp(id) == syntax.OpNot {
			return evalUnder(a, a.Operand(id), env).Not()
		}
	case syntax.KindBinary:
		switch a.BinaryOp(id) {
		case syntax.OpAndAnd:
			lv := evalUnder(a, a.Left(id), env)
			if lv == False {
				return False
			}
			if lv != True {
				return Unknown
			}
			return evalUnder(a, a.Right(id), env)
		case syntax.OpOrOr:
			lv := evalUnder(a, a.Left(id), env)
			if lv == True {
				return True
			}
			if lv != False {
				return Unknown
			}
			return evalUnder(a, a.Right(id), env)
		case syntax.OpXor:
			lv := evalUnder(a, a.Left(id), env)
			rv := evalUnder(a, a.Right(id), env)
			if !lv.Known() || !rv.Known() {
				return Unknown
			}
			return TruthOf(lv != rv)
		}
	}
	return env[a.Render(id)]
}
