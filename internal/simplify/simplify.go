package simplify

import (
	"errors"

	"github.com/exprkit/boolsimp/internal/syntax"
)

// ErrNotApplicable is returned by Apply when no ancestor of the cursor can
// be simplified. Hosts treat it as "offer nothing here", not as a failure.
var ErrNotApplicable = errors.New("simplify: no simplifiable boolean expression here")

// Simplifier runs the boolean simplification analyses over one arena.
// It is stateless apart from the arena reference; the zero value is not
// usable, call New.
type Simplifier struct {
	arena *syntax.Arena
}

// New returns a Simplifier operating on the given arena.
func New(a *syntax.Arena) *Simplifier {
	return &Simplifier{arena: a}
}

// Arena returns the arena the simplifier mutates.
func (s *Simplifier) Arena() *syntax.Arena {
	return s.arena
}

// IsApplicable reports whether Apply at this cursor would rewrite
// something. It must stay cheap: hosts call it to decide whether to offer
// the action at all.
func (s *Simplifier) IsApplicable(cursor syntax.NodeID) bool {
	_, ok := s.FindTarget(cursor)
	return ok
}

// Apply locates the outermost simplifiable ancestor of cursor and rewrites
// it, returning the node that now stands in its place. When nothing
// applies it returns ErrNotApplicable and leaves the tree untouched.
func (s *Simplifier) Apply(cursor syntax.NodeID) (syntax.NodeID, error) {
	target, ok := s.FindTarget(cursor)
	if !ok {
		return syntax.None, ErrNotApplicable
	}
	return s.Rewrite(target)
}

// Reduce rewrites root's subtree to a fixed point, taking the shallowest
// simplifiable node each round, and returns the node standing where root
// stood along with the number of rewrites performed. Each step strictly
// shrinks the tree, so the loop is bounded by the arena size.
func (s *Simplifier) Reduce(root syntax.NodeID) (syntax.NodeID, int, error) {
	steps := 0
	bound := s.arena.Len() + 1
	for {
		target, ok := s.FindTargetWithin(root)
		if !ok {
			return root, steps, nil
		}
		repl, err := s.Rewrite(target)
		if err != nil {
			return root, steps, err
		}
		if target == root {
			root = repl
		}
		steps++
		if steps > bound {
			return root, steps, errors.New("simplify: reduction did not converge")
		}
	}
}
