package syntax

import "strings"

// Render produces source text for the subtree at id. Output is canonical
// rather than source-faithful: spacing is normalized and parentheses appear
// exactly where Paren nodes sit, which is safe because rewrites never
// invent new operator nesting. Absent slots render as <missing>.
func (a *Arena) Render(id NodeID) string {
	var sb strings.Builder
	a.render(&sb, id)
	return sb.String()
}

func (a *Arena) render(sb *strings.Builder, id NodeID) {
	if id == None {
		sb.WriteString("<missing>")
		return
	}
	n := &a.nodes[id]
	switch n.kind {
	case KindInvalid:
		sb.WriteString("<released>")
	case KindLiteral, KindPath, KindQualifiedPath:
		sb.WriteString(n.text)
	case KindUnit:
		sb.WriteString("()")
	case KindParen:
		sb.WriteByte('(')
		a.render(sb, n.children[0])
		sb.WriteByte(')')
	case KindUnary:
		sb.WriteString(n.unOp.String())
		a.render(sb, n.children[0])
	case KindBinary:
		a.render(sb, n.children[0])
		sb.WriteByte(' ')
		sb.WriteString(n.binOp.String())
		sb.WriteByte(' ')
		a.render(sb, n.children[1])
	case KindArray:
		sb.WriteByte('[')
		if n.repeat {
			a.render(sb, n.children[0])
			sb.WriteString("; ")
			a.render(sb, n.children[1])
		} else {
			a.renderList(sb, n.children)
		}
		sb.WriteByte(']')
	case KindTuple:
		sb.WriteByte('(')
		a.renderList(sb, n.children)
		if len(n.children) == 1 {
			sb.WriteByte(',')
		}
		sb.WriteByte(')')
	case KindStructLit:
		sb.WriteString(n.text)
		sb.WriteByte('{')
		fields := n.children
		if n.spread {
			fields = fields[:len(fields)-1]
		}
		for i, c := range fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			if i < len(n.names) && n.names[i] != "" {
				sb.WriteString(n.names[i])
				sb.WriteString(": ")
			}
			a.render(sb, c)
		}
		if n.spread {
			if len(fields) > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("..")
			a.render(sb, n.children[len(n.children)-1])
		}
		sb.WriteByte('}')
	case KindFieldAccess:
		a.render(sb, n.children[0])
		sb.WriteByte('.')
		sb.WriteString(n.text)
	case KindBlock:
		if len(n.children) == 0 {
			sb.WriteString("{}")
			return
		}
		// Statement children carry their own terminators.
		sb.WriteString("{ ")
		a.renderJoin(sb, n.children, " ")
		sb.WriteString(" }")
	case KindCast:
		a.render(sb, n.children[0])
		sb.WriteString(" as ")
		sb.WriteString(n.text)
	case KindCall:
		sb.WriteString(n.text)
		sb.WriteByte('(')
		a.renderList(sb, n.children)
		sb.WriteByte(')')
	case KindMethodCall:
		a.render(sb, n.children[0])
		sb.WriteByte('.')
		sb.WriteString(n.text)
		sb.WriteByte('(')
		a.renderList(sb, n.children[1:])
		sb.WriteByte(')')
	case KindIndex:
		a.render(sb, n.children[0])
		sb.WriteByte('[')
		a.render(sb, n.children[1])
		sb.WriteByte(']')
	case KindIf:
		sb.WriteString("if ")
		a.render(sb, n.children[0])
		sb.WriteByte(' ')
		a.render(sb, n.children[1])
		if n.children[2] != None {
			sb.WriteString(" else ")
			a.render(sb, n.children[2])
		}
	case KindMatch:
		sb.WriteString("match ")
		a.render(sb, n.children[0])
		sb.WriteString(" { ")
		a.renderList(sb, n.children[1:])
		sb.WriteString(" }")
	case KindFor:
		sb.WriteString("for ")
		sb.WriteString(n.text)
		sb.WriteString(" in ")
		a.render(sb, n.children[0])
		sb.WriteByte(' ')
		a.render(sb, n.children[1])
	case KindWhile:
		sb.WriteString("while ")
		a.render(sb, n.children[0])
		sb.WriteByte(' ')
		a.render(sb, n.children[1])
	case KindLoop:
		sb.WriteString("loop ")
		a.render(sb, n.children[0])
	case KindRange:
		if n.children[0] != None {
			a.render(sb, n.children[0])
		}
		sb.WriteString("..")
		if n.children[1] != None {
			a.render(sb, n.children[1])
		}
	case KindLambda:
		sb.WriteByte('|')
		sb.WriteString(n.text)
		sb.WriteString("| ")
		a.render(sb, n.children[0])
	case KindMacro:
		sb.WriteString(n.text)
		sb.WriteString("!(")
		a.renderList(sb, n.children)
		sb.WriteByte(')')
	case KindBreak:
		sb.WriteString("break")
		if n.children[0] != None {
			sb.WriteByte(' ')
			a.render(sb, n.children[0])
		}
	case KindContinue:
		sb.WriteString("continue")
	case KindReturn:
		sb.WriteString("return")
		if n.children[0] != None {
			sb.WriteByte(' ')
			a.render(sb, n.children[0])
		}
	case KindTry:
		a.render(sb, n.children[0])
		sb.WriteByte('?')
	case KindStmt:
		a.render(sb, n.children[0])
		sb.WriteByte(';')
	}
}

func (a *Arena) renderList(sb *strings.Builder, ids []NodeID) {
	a.renderJoin(sb, ids, ", ")
}

func (a *Arena) renderJoin(sb *strings.Builder, ids []NodeID, sep string) {
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(sep)
		}
		a.render(sb, id)
	}
}
