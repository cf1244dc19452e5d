package lints

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
)

// ParseFile parses filename, or src when it is non-nil, keeping comments
// so that suppression directives survive.
func ParseFile(filename string, src []byte) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	var content interface{}
	if src != nil {
		content = src
	}
	node, err := parser.ParseFile(fset, filename, content, parser.ParseComments)
	if err != nil {
		return nil, nil, err
	}
	return node, fset, nil
}

// exprText renders an expression without needing its file set.
func exprText(e ast.Expr) string {
	return types.ExprString(e)
}
