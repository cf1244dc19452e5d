package syntax

import "fmt"

// Constructors allocate unparented nodes. Present children are adopted
// immediately; passing a node that already has a parent panics, since it
// would give one child two owners.

// Bool creates a boolean literal.
func (a *Arena) Bool(v bool) NodeID {
	if v {
		return a.alloc(node{kind: KindLiteral, text: "true"})
	}
	return a.alloc(node{kind: KindLiteral, text: "false"})
}

// ParseBoolLiteral creates a boolean literal from its source text. Only the
// exact spellings "true" and "false" are accepted.
func (a *Arena) ParseBoolLiteral(text string) (NodeID, error) {
	switch text {
	case "true", "false":
		return a.alloc(node{kind: KindLiteral, text: text}), nil
	}
	return None, fmt.Errorf("syntax: %q is not a boolean literal", text)
}

// Lit creates a literal with the given source text. Numeric, string, and
// char literals all land here; only "true" and "false" are interpreted.
func (a *Arena) Lit(text string) NodeID {
	return a.alloc(node{kind: KindLiteral, text: text})
}

// Binary creates a binary expression. right may be None for a half-written
// expression.
func (a *Arena) Binary(op BinaryOp, left, right NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindBinary, binOp: op, children: []NodeID{left, right}}))
}

// And creates a short-circuit conjunction.
func (a *Arena) And(left, right NodeID) NodeID {
	return a.Binary(OpAndAnd, left, right)
}

// Or creates a short-circuit disjunction.
func (a *Arena) Or(left, right NodeID) NodeID {
	return a.Binary(OpOrOr, left, right)
}

// Xor creates a boolean exclusive or.
func (a *Arena) Xor(left, right NodeID) NodeID {
	return a.Binary(OpXor, left, right)
}

// Unary creates a unary expression. operand may be None.
func (a *Arena) Unary(op UnaryOp, operand NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindUnary, unOp: op, children: []NodeID{operand}}))
}

// Not creates a logical negation.
func (a *Arena) Not(operand NodeID) NodeID {
	return a.Unary(OpNot, operand)
}

// Paren wraps an expression in parentheses.
func (a *Arena) Paren(inner NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindParen, children: []NodeID{inner}}))
}

// Path creates a plain name reference.
func (a *Arena) Path(name string) NodeID {
	return a.alloc(node{kind: KindPath, text: name})
}

// QualifiedPath creates a type-qualified name reference.
func (a *Arena) QualifiedPath(name string) NodeID {
	return a.alloc(node{kind: KindQualifiedPath, text: name})
}

// Unit creates the unit value.
func (a *Arena) Unit() NodeID {
	return a.alloc(node{kind: KindUnit})
}

// Array creates an array literal from its elements.
func (a *Arena) Array(elems ...NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindArray, children: elems}))
}

// RepeatArray creates the [elem; len] array form.
func (a *Arena) RepeatArray(elem, length NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindArray, repeat: true, children: []NodeID{elem, length}}))
}

// Tuple creates a tuple from its elements.
func (a *Arena) Tuple(elems ...NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindTuple, children: elems}))
}

// StructLit creates a struct literal. names aligns with values; an empty
// name marks a positional field.
func (a *Arena) StructLit(typeName string, names []string, values []NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindStructLit, text: typeName, names: names, children: values}))
}

// StructLitSpread creates a struct literal completed from base, as in
// T { x: v, ..base }. base is the last child.
func (a *Arena) StructLitSpread(typeName string, names []string, values []NodeID, base NodeID) NodeID {
	children := append(append([]NodeID{}, values...), base)
	return a.adopt(a.alloc(node{kind: KindStructLit, text: typeName, names: names, spread: true, children: children}))
}

// FieldAccess creates base.field.
func (a *Arena) FieldAccess(base NodeID, field string) NodeID {
	return a.adopt(a.alloc(node{kind: KindFieldAccess, text: field, children: []NodeID{base}}))
}

// Block creates a block expression. Statements inside are opaque.
func (a *Arena) Block(stmts ...NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindBlock, children: stmts}))
}

// Cast creates operand as typeName.
func (a *Arena) Cast(operand NodeID, typeName string) NodeID {
	return a.adopt(a.alloc(node{kind: KindCast, text: typeName, children: []NodeID{operand}}))
}

// Call creates a call to a named callee.
func (a *Arena) Call(callee string, args ...NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindCall, text: callee, children: args}))
}

// MethodCall creates recv.method(args...). The receiver is child 0.
func (a *Arena) MethodCall(recv NodeID, method string, args ...NodeID) NodeID {
	children := append([]NodeID{recv}, args...)
	return a.adopt(a.alloc(node{kind: KindMethodCall, text: method, children: children}))
}

// Index creates base[index].
func (a *Arena) Index(base, index NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindIndex, children: []NodeID{base, index}}))
}

// If creates a conditional expression. els may be None.
func (a *Arena) If(cond, then, els NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindIf, children: []NodeID{cond, then, els}}))
}

// Match creates a match over scrutinee. Arms are opaque children.
func (a *Arena) Match(scrutinee NodeID, arms ...NodeID) NodeID {
	children := append([]NodeID{scrutinee}, arms...)
	return a.adopt(a.alloc(node{kind: KindMatch, children: children}))
}

// For creates a for loop over iter with the given binding pattern.
func (a *Arena) For(pattern string, iter, body NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindFor, text: pattern, children: []NodeID{iter, body}}))
}

// While creates a while loop.
func (a *Arena) While(cond, body NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindWhile, children: []NodeID{cond, body}}))
}

// Loop creates an unconditional loop.
func (a *Arena) Loop(body NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindLoop, children: []NodeID{body}}))
}

// Range creates lo..hi. Either bound may be None.
func (a *Arena) Range(lo, hi NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindRange, children: []NodeID{lo, hi}}))
}

// Lambda creates a closure with the given parameter list text and body.
func (a *Arena) Lambda(params string, body NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindLambda, text: params, children: []NodeID{body}}))
}

// Macro creates a macro invocation. Arguments are opaque.
func (a *Arena) Macro(name string, args ...NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindMacro, text: name, children: args}))
}

// Break creates a break expression. value may be None.
func (a *Arena) Break(value NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindBreak, children: []NodeID{value}}))
}

// Continue creates a continue expression.
func (a *Arena) Continue() NodeID {
	return a.alloc(node{kind: KindContinue})
}

// Return creates a return expression. value may be None.
func (a *Arena) Return(value NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindReturn, children: []NodeID{value}}))
}

// Try creates the error-propagating inner? form.
func (a *Arena) Try(inner NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindTry, children: []NodeID{inner}}))
}

// Stmt wraps an expression in a statement. The wrapper gives top-level
// expressions a parent so they can be replaced like any other node.
func (a *Arena) Stmt(expr NodeID) NodeID {
	return a.adopt(a.alloc(node{kind: KindStmt, children: []NodeID{expr}}))
}
