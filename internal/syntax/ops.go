package syntax

// BinaryOp is the operator of a binary expression. Only the short-circuit
// operators and boolean xor are interpreted; the rest are carried so that
// mixed expressions render faithfully.
type BinaryOp uint8

const (
	OpNoBinary BinaryOp = iota

	OpAndAnd // &&
	OpOrOr   // ||
	OpXor    // ^

	OpAdd // +
	OpSub // -
	OpMul // *
	OpDiv // /
	OpRem // %

	OpBitAnd // &
	OpBitOr  // |
	OpShl    // <<
	OpShr    // >>

	OpEq // ==
	OpNe // !=
	OpLt // <
	OpLe // <=
	OpGt // >
	OpGe // >=
)

var binaryTokens = [...]string{
	OpNoBinary: "?",
	OpAndAnd:   "&&",
	OpOrOr:     "||",
	OpXor:      "^",
	OpAdd:      "+",
	OpSub:      "-",
	OpMul:      "*",
	OpDiv:      "/",
	OpRem:      "%",
	OpBitAnd:   "&",
	OpBitOr:    "|",
	OpShl:      "<<",
	OpShr:      ">>",
	OpEq:       "==",
	OpNe:       "!=",
	OpLt:       "<",
	OpLe:       "<=",
	OpGt:       ">",
	OpGe:       ">=",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryTokens) {
		return binaryTokens[op]
	}
	return "?"
}

// UnaryOp is the operator of a unary expression.
type UnaryOp uint8

const (
	OpNoUnary UnaryOp = iota

	OpNot    // !
	OpNeg    // -
	OpRef    // &
	OpRefMut // &mut
	OpDeref  // *
	OpBox    // box
)

var unaryTokens = [...]string{
	OpNoUnary: "?",
	OpNot:     "!",
	OpNeg:     "-",
	OpRef:     "&",
	OpRefMut:  "&mut ",
	OpDeref:   "*",
	OpBox:     "box ",
}

func (op UnaryOp) String() string {
	if int(op) < len(unaryTokens) {
		return unaryTokens[op]
	}
	return "?"
}
