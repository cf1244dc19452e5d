package simplify

import "github.com/exprkit/boolsimp/internal/syntax"

// Purity classifies an expression structurally. The verdict is
// conservative in both directions: Pure is only claimed where the syntax
// alone guarantees it, and Impure is only claimed where evaluation
// observably does something. Everything that depends on what a name
// resolves to (calls, operators that may be overloaded, loops, blocks)
// stays Unknown.
//
// The switch enumerates every kind on purpose. A new variant added to the
// tree fails to compile into a silent "pure by accident"; it lands in the
// explicit arms or the conservative default.
func (s *Simplifier) Purity(id syntax.NodeID) Purity {
	a := s.arena
	switch a.Kind(id) {
	case syntax.KindBreak, syntax.KindContinue, syntax.KindReturn, syntax.KindTry:
		// Control-flow escapes always do something.
		return Impure

	case syntax.KindLiteral, syntax.KindPath, syntax.KindQualifiedPath, syntax.KindUnit:
		return Pure

	case syntax.KindParen:
		return s.Purity(a.Inner(id))

	case syntax.KindFieldAccess:
		// Reading a field is as pure as reaching the value it hangs off.
		return s.Purity(a.Base(id))

	case syntax.KindTuple:
		return s.allPure(a.Children(id))

	case syntax.KindArray:
		if a.RepeatForm(id) {
			// The length is a constant; only the element matters.
			return s.Purity(a.Children(id)[0])
		}
		return s.allPure(a.Children(id))

	case syntax.KindStructLit:
		if a.HasSpread(id) {
			// The base both evaluates and fills unknown fields; what it
			// does is not visible syntactically.
			return PurityUnknown
		}
		return s.allPure(a.Children(id))

	case syntax.KindBinary, syntax.KindUnary, syntax.KindCast,
		syntax.KindCall, syntax.KindMethodCall, syntax.KindIndex, syntax.KindMacro,
		syntax.KindBlock, syntax.KindIf, syntax.KindMatch, syntax.KindLambda,
		syntax.KindFor, syntax.KindWhile, syntax.KindLoop, syntax.KindRange:
		// Operators and indexing may be overloaded, calls and macros run
		// arbitrary code, and control-flow bodies are opaque.
		return PurityUnknown

	default:
		return PurityUnknown
	}
}

// allPure folds element purities into an aggregate verdict using the
// dual-reading rule: resolve every Unknown once as Pure and once as
// Impure, conjoin each reading, and keep the answer only if the two
// readings agree. {Pure, Unknown} stays Unknown because the readings
// split, while {Impure, Unknown} is Impure under both.
func (s *Simplifier) allPure(elems []syntax.NodeID) Purity {
	ifUnknownPure := true
	ifUnknownImpure := true
	for _, e := range elems {
		if e == syntax.None {
			continue
		}
		switch s.Purity(e) {
		case Pure:
		case Impure:
			ifUnknownPure = false
			ifUnknownImpure = false
		default:
			ifUnknownImpure = false
		}
	}
	if ifUnknownPure != ifUnknownImpure {
		return PurityUnknown
	}
	if ifUnknownPure {
		return Pure
	}
	return Impure
}
