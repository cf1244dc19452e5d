package simplify

import "github.com/exprkit/boolsimp/internal/syntax"

// Simplifiable reports whether a rewrite exists for this exact node. Three
// shapes qualify:
//
//   - a non-literal expression whose value Eval already knows;
//   - a && / || whose left operand is known (the right operand then
//     stands for the whole expression, no purity proof needed: when the
//     left operand folds to a constant its evaluation cannot have run
//     anything effectful);
//   - a && / || whose right operand is known. Dropping `&& true` or
//     `|| false` keeps the left operand and needs no proof; collapsing
//     `&& false` or `|| true` to a constant deletes the left operand
//     unevaluated and is gated on MayDiscard.
//
// Literals are excluded so the action never offers to "simplify" true to
// true.
func (s *Simplifier) Simplifiable(id syntax.NodeID) bool {
	a := s.arena
	if !a.IsExpr(id) {
		return false
	}
	if a.Kind(id) == syntax.KindLiteral {
		return false
	}
	if s.Eval(id).Known() {
		return true
	}
	if a.Kind(id) != syntax.KindBinary {
		return false
	}
	op := a.BinaryOp(id)
	if op != syntax.OpAndAnd && op != syntax.OpOrOr {
		return false
	}
	left, right := a.Left(id), a.Right(id)
	if left == syntax.None || right == syntax.None {
		return false
	}
	if s.Eval(left).Known() {
		return true
	}
	rv := s.Eval(right)
	if !rv.Known() {
		return false
	}
	if keepsLeft(op, rv) {
		return true
	}
	return MayDiscard(s.Purity(left))
}

// keepsLeft reports whether a known right operand makes the binary
// expression equivalent to its left operand alone (x && true, x || false).
// The complementary cases (x && false, x || true) discard the left operand
// instead and so carry a purity obligation.
func keepsLeft(op syntax.BinaryOp, rv Truth) bool {
	return (op == syntax.OpAndAnd && rv == True) || (op == syntax.OpOrOr && rv == False)
}

// FindTarget walks from cursor through its expression ancestors and
// returns the outermost simplifiable one. Rewriting the widest region
// keeps the result stable: reducing an inner corner of a foldable
// expression would leave a different, smaller offer behind.
//
// The walk stops at the first non-expression ancestor, so it never crosses
// a statement boundary.
func (s *Simplifier) FindTarget(cursor syntax.NodeID) (syntax.NodeID, bool) {
	target := syntax.None
	found := false
	for id := cursor; s.arena.IsExpr(id); id = s.arena.Parent(id) {
		if s.Simplifiable(id) {
			target, found = id, true
		}
	}
	return target, found
}

// FindTargetWithin scans root's subtree in preorder and returns the
// shallowest simplifiable node. Batch reduction uses it to pick the next
// rewrite; taking the shallowest match first means enclosing expressions
// fold before their corners.
func (s *Simplifier) FindTargetWithin(root syntax.NodeID) (syntax.NodeID, bool) {
	if root == syntax.None {
		return syntax.None, false
	}
	if s.arena.IsExpr(root) && s.Simplifiable(root) {
		return root, true
	}
	for _, c := range s.arena.Children(root) {
		if c == syntax.None {
			continue
		}
		if target, ok := s.FindTargetWithin(c); ok {
			return target, true
		}
	}
	return syntax.None, false
}
