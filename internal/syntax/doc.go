// Package syntax defines an arena-backed expression tree that mirrors the
// surface syntax of the sources we analyze.
//
// Nodes live in an Arena and are addressed by stable NodeID indices rather
// than pointers. Structural edits go through explicit primitives
// (ReplaceChild, Replace) that rewire parent links and retire the subtree
// they displace, so a rewrite can never leave two parents claiming the same
// child or resurrect a node that was already cut out of the tree.
//
// The tree is deliberately shallow in what it understands. Boolean literals,
// the short-circuit operators, negation, and parentheses carry enough
// structure to reason about; everything else (calls, loops, matches, casts)
// is kept as an opaque node whose children are tracked only so the subtree
// can be rendered and released.
package syntax
