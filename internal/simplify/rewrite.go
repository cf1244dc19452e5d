package simplify

import (
	"fmt"

	"github.com/exprkit/boolsimp/internal/syntax"
)

// Rewrite replaces target with its simplified form and returns the node
// now standing in target's place. The cases mirror Simplifiable exactly;
// reaching the end without a case is a defect in one of the two and is
// reported as an error rather than patched over.
//
// On success the displaced nodes are released; on error the tree is
// untouched.
func (s *Simplifier) Rewrite(target syntax.NodeID) (syntax.NodeID, error) {
	a := s.arena

	// Whole expression folds to a constant. Purity needs no check here:
	// for the value to be known, every operand that could still run at
	// runtime folded too, and anything effectful sits behind a
	// short-circuit that provably cuts it off.
	if v := s.Eval(target); v.Known() {
		lit := a.Bool(v == True)
		if err := a.Replace(target, lit); err != nil {
			return syntax.None, err
		}
		return lit, nil
	}

	// Partial rewrites apply to && and || only. A known xor operand
	// never lets the other operand stand alone.
	op := a.BinaryOp(target)
	if op != syntax.OpAndAnd && op != syntax.OpOrOr {
		return syntax.None, fmt.Errorf("simplify: cannot rewrite %q: value unknown and not a short-circuit expression", a.Render(target))
	}
	left, right := a.Left(target), a.Right(target)

	// Known left operand: true && x and false || x are just x. The
	// constant is deleted, but evaluating a constant does nothing, so
	// there is no effect to preserve.
	if left != syntax.None && right != syntax.None && s.Eval(left).Known() {
		if err := a.Replace(target, right); err != nil {
			return syntax.None, err
		}
		return right, nil
	}

	if right != syntax.None {
		if rv := s.Eval(right); rv.Known() {
			// x && true and x || false keep the left operand; its
			// evaluation still happens, so nothing is discarded.
			if keepsLeft(op, rv) {
				if err := a.Replace(target, left); err != nil {
					return syntax.None, err
				}
				return left, nil
			}
			// x && false and x || true erase the left operand without
			// running it. Only a purity proof makes that sound.
			if !MayDiscard(s.Purity(left)) {
				return syntax.None, fmt.Errorf("simplify: refusing to discard %q: operand is not provably pure", a.Render(left))
			}
			lit := a.Bool(rv == True)
			if err := a.Replace(target, lit); err != nil {
				return syntax.None, err
			}
			return lit, nil
		}
	}

	return syntax.None, fmt.Errorf("simplify: no rewrite for %q: locator and rewriter disagree on simplifiability", a.Render(target))
}
