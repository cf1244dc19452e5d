// Package simplify reduces boolean expressions by constant folding and
// short-circuit reasoning, without changing what the program does.
//
// Three analyses cooperate. Eval computes the compile-time truth value of
// an expression where one exists, folding only through !, &&, ||, ^, and
// parentheses. Purity classifies an expression by whether evaluating it
// could have side effects, judged structurally and conservatively. The
// simplifiability predicate combines the two to decide whether a rewrite
// exists that is both meaning- and effect-preserving.
//
// Every verdict is tri-state. Unknown is the zero value of both Truth and
// Purity, so an uninitialized or unhandled case defaults to "don't know",
// and "don't know" always means "don't touch".
package simplify
