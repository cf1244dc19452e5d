// Package internal houses the lint engine behind the boolsimp tool.
//
// The engine parses one Go file at a time and fans a fixed set of rules
// out over the resulting syntax tree. Each rule reports tt.Issue values
// carrying a position span, a severity, and, when the rule can prove a
// rewrite safe, a replacement expression with a confidence score.
//
// Key components:
//
// Engine: coordinates a single run. It owns the rule set, applies per-rule
// configuration, and filters findings through suppression comments.
//
// LintRule: the contract every rule implements. Rules are stateless apart
// from their configuration and may run concurrently on a shared, read-only
// AST.
//
// Watcher: an fsnotify loop that re-checks files as they change, feeding
// the same engine.
//
// The boolean reasoning itself lives in the internal/syntax and
// internal/simplify packages; the rules in internal/lints bridge Go
// expressions into that world and translate verdicts back into issues.
package internal
