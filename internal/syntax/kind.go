package syntax

// Kind identifies the syntactic variant of a node. The set is closed: code
// that switches over kinds should enumerate the ones it understands and
// treat everything else conservatively.
type Kind uint8

const (
	// KindInvalid marks a node that was released from the tree. Accessors
	// on a released node return zero values.
	KindInvalid Kind = iota

	KindLiteral
	KindBinary
	KindUnary
	KindParen
	KindArray
	KindTuple
	KindStructLit
	KindFieldAccess
	KindPath
	KindQualifiedPath
	KindUnit
	KindBlock
	KindCast
	KindCall
	KindMethodCall
	KindIndex
	KindIf
	KindMatch
	KindFor
	KindWhile
	KindLoop
	KindRange
	KindLambda
	KindMacro
	KindBreak
	KindContinue
	KindReturn
	KindTry

	// KindStmt is a statement wrapper. It is not an expression itself; it
	// exists so that a top-level expression has a parent to be replaced
	// under and so that ancestor walks stop at statement boundaries.
	KindStmt
)

var kindNames = [...]string{
	KindInvalid:       "Invalid",
	KindLiteral:       "Literal",
	KindBinary:        "Binary",
	KindUnary:         "Unary",
	KindParen:         "Paren",
	KindArray:         "Array",
	KindTuple:         "Tuple",
	KindStructLit:     "StructLit",
	KindFieldAccess:   "FieldAccess",
	KindPath:          "Path",
	KindQualifiedPath: "QualifiedPath",
	KindUnit:          "Unit",
	KindBlock:         "Block",
	KindCast:          "Cast",
	KindCall:          "Call",
	KindMethodCall:    "MethodCall",
	KindIndex:         "Index",
	KindIf:            "If",
	KindMatch:         "Match",
	KindFor:           "For",
	KindWhile:         "While",
	KindLoop:          "Loop",
	KindRange:         "Range",
	KindLambda:        "Lambda",
	KindMacro:         "Macro",
	KindBreak:         "Break",
	KindContinue:      "Continue",
	KindReturn:        "Return",
	KindTry:           "Try",
	KindStmt:          "Stmt",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Invalid"
}

// IsExpr reports whether the kind denotes an expression. Statement wrappers
// and released nodes are not expressions.
func (k Kind) IsExpr() bool {
	return k != KindInvalid && k != KindStmt
}
