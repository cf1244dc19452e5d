// Package nolint implements the //boolsimp:ignore suppression directive.
//
// A directive before the package clause silences the whole file. A
// directive on its own line covers the statement starting on the next
// line; inline, it covers the statement it shares a line with. An
// optional comma-separated rule list narrows it: without one the
// directive silences every rule.
package nolint

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"
)

const directive = "//boolsimp:ignore"

// Manager answers whether a finding at some position is suppressed.
type Manager struct {
	// scopes maps filename to the suppressed regions within it.
	scopes map[string][]scope
}

type scope struct {
	rules map[string]struct{}
	start token.Position
	end   token.Position
}

// ParseComments collects every suppression directive in the file.
func ParseComments(f *ast.File, fset *token.FileSet) *Manager {
	mgr := Manager{
		scopes: make(map[string][]scope, len(f.Comments)),
	}
	stmtAt := indexStatementsByLine(f, fset)
	packageLine := fset.Position(f.Package).Line

	for _, group := range f.Comments {
		for _, comment := range group.List {
			sc, err := parseDirective(comment, f, fset, stmtAt, packageLine)
			if err != nil {
				// Not a directive, or a malformed one. Either way it
				// suppresses nothing.
				continue
			}
			filename := sc.start.Filename
			mgr.scopes[filename] = append(mgr.scopes[filename], sc)
		}
	}
	return &mgr
}

var errNotDirective = errors.New("not a suppression directive")

func parseDirective(
	comment *ast.Comment,
	f *ast.File,
	fset *token.FileSet,
	stmtAt map[int]ast.Stmt,
	packageLine int,
) (scope, error) {
	var sc scope
	text := comment.Text

	if !strings.HasPrefix(text, directive) {
		return sc, errNotDirective
	}
	rest := text[len(directive):]
	if rest != "" && !strings.HasPrefix(rest, " ") {
		// Some other directive that merely shares the prefix.
		return sc, errNotDirective
	}
	sc.rules = parseRuleList(strings.TrimSpace(rest))

	pos := fset.Position(comment.Slash)

	// Before the package clause the directive covers the whole file.
	if pos.Line < packageLine {
		sc.start = fset.Position(f.Pos())
		sc.end = fset.Position(f.End())
		return sc, nil
	}

	// Inline: cover the statement this line belongs to.
	if stmt, ok := stmtAt[pos.Line]; ok {
		if pos.Offset > fset.Position(stmt.Pos()).Offset {
			sc.start = fset.Position(stmt.Pos())
			sc.end = fset.Position(stmt.End())
			return sc, nil
		}
	}

	// On its own line: cover the statement starting on the next line.
	if stmt, ok := stmtAt[pos.Line+1]; ok {
		sc.start = pos
		sc.end = fset.Position(stmt.End())
		return sc, nil
	}

	// Ahead of a function declaration: cover the whole function.
	if decl := functionStartingAt(fset, f, pos.Line+1); decl != nil {
		sc.start = pos
		sc.end = fset.Position(decl.End())
		return sc, nil
	}

	// Nothing recognizable follows; cover just this line.
	sc.start = pos
	sc.end = pos
	return sc, nil
}

func parseRuleList(text string) map[string]struct{} {
	rules := make(map[string]struct{})
	if text == "" {
		return rules
	}
	for _, rule := range strings.Split(text, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	return rules
}

// indexStatementsByLine maps each line to the first statement starting on
// it.
func indexStatementsByLine(f *ast.File, fset *token.FileSet) map[int]ast.Stmt {
	stmtAt := make(map[int]ast.Stmt)
	ast.Inspect(f, func(n ast.Node) bool {
		if n == nil {
			return false
		}
		if stmt, ok := n.(ast.Stmt); ok {
			line := fset.Position(stmt.Pos()).Line
			if _, exists := stmtAt[line]; !exists {
				stmtAt[line] = stmt
			}
		}
		return true
	})
	return stmtAt
}

func functionStartingAt(fset *token.FileSet, f *ast.File, line int) *ast.FuncDecl {
	for _, decl := range f.Decls {
		if funcDecl, ok := decl.(*ast.FuncDecl); ok {
			if fset.Position(funcDecl.Pos()).Line == line {
				return funcDecl
			}
		}
	}
	return nil
}

// IsSuppressed reports whether a finding of ruleName at pos falls inside a
// suppression scope.
func (m *Manager) IsSuppressed(pos token.Position, ruleName string) bool {
	scopes, ok := m.scopes[pos.Filename]
	if !ok {
		return false
	}
	for _, sc := range scopes {
		if pos.Line < sc.start.Line || pos.Line > sc.end.Line {
			continue
		}
		if len(sc.rules) == 0 {
			return true
		}
		if _, ok := sc.rules[ruleName]; ok {
			return true
		}
	}
	return false
}
