package fixer

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

// PruneUnusedImports removes imports that no identifier in the file refers
// to anymore. Simplifying a boolean expression can delete the only call
// into a package, and the pruned source would not compile otherwise.
// Returns the removed import paths.
func PruneUnusedImports(fset *token.FileSet, file *ast.File) []string {
	var removed []string

	for _, group := range astutil.Imports(fset, file) {
		for _, imp := range group {
			// Blank and dot imports have effects a syntactic scan
			// cannot see. Keep them.
			if imp.Name != nil && (imp.Name.Name == "_" || imp.Name.Name == ".") {
				continue
			}

			path, err := strconv.Unquote(imp.Path.Value)
			if err != nil || astutil.UsesImport(file, path) {
				continue
			}

			// UsesImport guesses the package name from the last path
			// segment. When the guess is not even a valid identifier
			// (gopkg.in/yaml.v3 style paths), the answer is noise, so
			// keep the import.
			if imp.Name == nil && !token.IsIdentifier(pathBase(path)) {
				continue
			}

			name := ""
			if imp.Name != nil {
				name = imp.Name.Name
			}
			if astutil.DeleteNamedImport(fset, file, name, path) {
				removed = append(removed, path)
			}
		}
	}

	return removed
}

func pathBase(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
