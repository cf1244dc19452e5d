package syntax

import "fmt"

// NodeID addresses a node inside an Arena. IDs are stable for the lifetime
// of the arena: edits never move or renumber nodes.
type NodeID int32

// None is the absent node. Optional slots (a binary operand that was never
// written, the value of a bare return) hold None.
const None NodeID = -1

type node struct {
	kind     Kind
	parent   NodeID
	children []NodeID

	binOp BinaryOp
	unOp  UnaryOp

	// text carries the variant-specific payload: literal text, path or
	// callee name, struct or cast type, accessed field, macro name.
	text string

	// names label StructLit children positionally; an empty string marks
	// a positional (unnamed) field.
	names []string

	// repeat marks the [elem; len] array form, where children[0] is the
	// repeated element and children[1] the length.
	repeat bool

	// spread marks a struct literal completed from a base value. Which
	// fields the base fills in cannot be known syntactically.
	spread bool
}

// Arena owns a tree of nodes. The zero value is not usable; call NewArena.
type Arena struct {
	nodes []node
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Len returns the number of nodes ever allocated, including released ones.
func (a *Arena) Len() int {
	return len(a.nodes)
}

func (a *Arena) alloc(n node) NodeID {
	n.parent = None
	a.nodes = append(a.nodes, n)
	return NodeID(len(a.nodes) - 1)
}

func (a *Arena) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(a.nodes) && a.nodes[id].kind != KindInvalid
}

// Kind returns the node's kind, or KindInvalid for None, out-of-range, and
// released IDs.
func (a *Arena) Kind(id NodeID) Kind {
	if id < 0 || int(id) >= len(a.nodes) {
		return KindInvalid
	}
	return a.nodes[id].kind
}

// IsExpr reports whether id is a live expression node.
func (a *Arena) IsExpr(id NodeID) bool {
	return a.Kind(id).IsExpr()
}

// Parent returns the node's parent, or None for roots and released nodes.
func (a *Arena) Parent(id NodeID) NodeID {
	if !a.valid(id) {
		return None
	}
	return a.nodes[id].parent
}

// Children returns the node's child slots. Slots may hold None where a
// child is syntactically absent. The returned slice is owned by the arena
// and must not be mutated by the caller.
func (a *Arena) Children(id NodeID) []NodeID {
	if !a.valid(id) {
		return nil
	}
	return a.nodes[id].children
}

func (a *Arena) child(id NodeID, slot int) NodeID {
	if !a.valid(id) || slot < 0 || slot >= len(a.nodes[id].children) {
		return None
	}
	return a.nodes[id].children[slot]
}

// Left returns the left operand of a binary node.
func (a *Arena) Left(id NodeID) NodeID {
	if a.Kind(id) != KindBinary {
		return None
	}
	return a.child(id, 0)
}

// Right returns the right operand of a binary node, which may be None when
// the operand was never written (as in a half-typed expression).
func (a *Arena) Right(id NodeID) NodeID {
	if a.Kind(id) != KindBinary {
		return None
	}
	return a.child(id, 1)
}

// Operand returns the operand of a unary node, which may be None.
func (a *Arena) Operand(id NodeID) NodeID {
	if a.Kind(id) != KindUnary {
		return None
	}
	return a.child(id, 0)
}

// Inner returns the expression inside a paren, statement, or try node.
func (a *Arena) Inner(id NodeID) NodeID {
	switch a.Kind(id) {
	case KindParen, KindStmt, KindTry:
		return a.child(id, 0)
	}
	return None
}

// Base returns the receiver of a field access or index node.
func (a *Arena) Base(id NodeID) NodeID {
	switch a.Kind(id) {
	case KindFieldAccess, KindIndex, KindMethodCall:
		return a.child(id, 0)
	}
	return None
}

// BinaryOp returns the operator of a binary node.
func (a *Arena) BinaryOp(id NodeID) BinaryOp {
	if a.Kind(id) != KindBinary {
		return OpNoBinary
	}
	return a.nodes[id].binOp
}

// UnaryOp returns the operator of a unary node.
func (a *Arena) UnaryOp(id NodeID) UnaryOp {
	if a.Kind(id) != KindUnary {
		return OpNoUnary
	}
	return a.nodes[id].unOp
}

// Text returns the node's textual payload (literal text, path, callee,
// type, field, or macro name).
func (a *Arena) Text(id NodeID) string {
	if !a.valid(id) {
		return ""
	}
	return a.nodes[id].text
}

// FieldNames returns the field labels of a struct literal, aligned with
// Children. Positional fields have empty labels.
func (a *Arena) FieldNames(id NodeID) []string {
	if a.Kind(id) != KindStructLit {
		return nil
	}
	return a.nodes[id].names
}

// RepeatForm reports whether an array node uses the [elem; len] form.
func (a *Arena) RepeatForm(id NodeID) bool {
	return a.Kind(id) == KindArray && a.nodes[id].repeat
}

// HasSpread reports whether a struct literal is completed from a base value.
func (a *Arena) HasSpread(id NodeID) bool {
	return a.Kind(id) == KindStructLit && a.nodes[id].spread
}

// BoolLit reports the value of a boolean literal node. ok is false for
// every other node, including non-boolean literals.
func (a *Arena) BoolLit(id NodeID) (value, ok bool) {
	if a.Kind(id) != KindLiteral {
		return false, false
	}
	switch a.nodes[id].text {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// adopt claims every present child for parent id. Called once per node at
// construction; children must be unparented roots.
func (a *Arena) adopt(id NodeID) NodeID {
	for _, c := range a.nodes[id].children {
		if c == None {
			continue
		}
		if !a.valid(c) {
			panic(fmt.Sprintf("syntax: adopting invalid node %d", c))
		}
		if a.nodes[c].parent != None {
			panic(fmt.Sprintf("syntax: node %d already has a parent", c))
		}
		a.nodes[c].parent = id
	}
	return id
}

// detach unlinks id from its parent, leaving None in the vacated slot.
// Detached nodes are roots and can be re-attached elsewhere.
func (a *Arena) detach(id NodeID) {
	if !a.valid(id) {
		return
	}
	p := a.nodes[id].parent
	if p == None {
		return
	}
	for i, c := range a.nodes[p].children {
		if c == id {
			a.nodes[p].children[i] = None
			break
		}
	}
	a.nodes[id].parent = None
}

// release retires id and everything still attached beneath it. Released
// nodes report KindInvalid and keep their ID forever; the arena never
// reuses slots, so a stale ID can be detected rather than misread.
func (a *Arena) release(id NodeID) {
	if !a.valid(id) {
		return
	}
	for _, c := range a.nodes[id].children {
		if c != None {
			a.release(c)
		}
	}
	a.nodes[id] = node{kind: KindInvalid, parent: None}
}

// ReplaceChild installs repl in the given child slot of parent, retiring
// the subtree previously held there. repl is detached from wherever it
// currently hangs, so a node can be relocated from inside the displaced
// subtree in one step.
func (a *Arena) ReplaceChild(parent NodeID, slot int, repl NodeID) error {
	if !a.valid(parent) {
		return fmt.Errorf("syntax: replace child of invalid node %d", parent)
	}
	if slot < 0 || slot >= len(a.nodes[parent].children) {
		return fmt.Errorf("syntax: node %d has no child slot %d", parent, slot)
	}
	if !a.valid(repl) {
		return fmt.Errorf("syntax: replacement node %d is invalid", repl)
	}
	old := a.nodes[parent].children[slot]
	if old == repl {
		return nil
	}
	a.detach(repl)
	a.nodes[parent].children[slot] = repl
	a.nodes[repl].parent = parent
	if old != None {
		a.release(old)
	}
	return nil
}

// Replace substitutes repl for old in old's parent and retires old's
// subtree. repl may come from inside that subtree: it is detached first,
// so only the remainder is released. Replacing a root is an error; callers
// keep expressions under a statement wrapper for exactly this reason.
func (a *Arena) Replace(old, repl NodeID) error {
	if !a.valid(old) {
		return fmt.Errorf("syntax: replace invalid node %d", old)
	}
	if old == repl {
		return fmt.Errorf("syntax: replace node %d with itself", old)
	}
	p := a.nodes[old].parent
	if p == None {
		return fmt.Errorf("syntax: node %d has no parent to replace it under", old)
	}
	for i, c := range a.nodes[p].children {
		if c == old {
			return a.ReplaceChild(p, i, repl)
		}
	}
	return fmt.Errorf("syntax: node %d not found among children of %d", old, p)
}
