package simplify

// Truth is the compile-time truth value of an expression. The zero value
// is Unknown so that missing information can never masquerade as a fact.
type Truth int8

const (
	Unknown Truth = iota
	True
	False
)

// TruthOf lifts a Go bool into a known Truth.
func TruthOf(v bool) Truth {
	if v {
		return True
	}
	return False
}

// Known reports whether the value is True or False.
func (t Truth) Known() bool {
	return t == True || t == False
}

// Not negates a known value and leaves Unknown alone.
func (t Truth) Not() Truth {
	switch t {
	case True:
		return False
	case False:
		return True
	}
	return Unknown
}

func (t Truth) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	}
	return "unknown"
}

// Purity classifies whether evaluating an expression can have side
// effects. Pure is a structural guarantee; Impure means evaluation
// observably does something (or aborts control flow); Unknown, the zero
// value, means the analysis cannot tell.
type Purity int8

const (
	PurityUnknown Purity = iota
	Pure
	Impure
)

func (p Purity) String() string {
	switch p {
	case Pure:
		return "pure"
	case Impure:
		return "impure"
	}
	return "unknown"
}

// MayDiscard reports whether an expression with purity p can be deleted
// without running it. Only a positive purity proof permits that; Unknown
// and Impure both forbid it. Every discard site must gate on this one
// helper so the policy cannot drift.
func MayDiscard(p Purity) bool {
	return p == Pure
}
