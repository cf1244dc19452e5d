package fixer

import (
	"bytes"
	"go/format"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prune(t *testing.T, src string) (string, []string) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments)
	require.NoError(t, err)

	removed := PruneUnusedImports(fset, file)

	var buf bytes.Buffer
	require.NoError(t, format.Node(&buf, fset, file))
	return buf.String(), removed
}

func TestPruneUnusedImports(t *testing.T) {
	src := `package main

import (
	"fmt"
	"strings"
)

func main() {
	fmt.Println("ok")
}
`
	out, removed := prune(t, src)
	assert.Equal(t, []string{"strings"}, removed)
	assert.Contains(t, out, `"fmt"`)
	assert.NotContains(t, out, `"strings"`)
}

func TestPruneKeepsBlankAndDotImports(t *testing.T) {
	src := `package main

import (
	_ "embed"
	. "strings"
)

func main() {}
`
	out, removed := prune(t, src)
	assert.Empty(t, removed)
	assert.Contains(t, out, `_ "embed"`)
	assert.Contains(t, out, `. "strings"`)
}

func TestPruneRemovesUnusedNamedImport(t *testing.T) {
	src := `package main

import str "strings"

func main() {}
`
	out, removed := prune(t, src)
	assert.Equal(t, []string{"strings"}, removed)
	assert.NotContains(t, out, `"strings"`)
}

func TestPruneKeepsUsedNamedImport(t *testing.T) {
	src := `package main

import str "strings"

func main() {
	_ = str.TrimSpace(" x ")
}
`
	out, removed := prune(t, src)
	assert.Empty(t, removed)
	assert.Contains(t, out, `str "strings"`)
}

func TestPruneKeepsImportWithVersionedPath(t *testing.T) {
	// The package name "yaml" cannot be guessed from the path, so the
	// pruner has to leave the import alone even though it is in use.
	src := `package main

import "gopkg.in/yaml.v3"

func main() {
	_ = yaml.Node{}
}
`
	out, removed := prune(t, src)
	assert.Empty(t, removed)
	assert.Contains(t, out, `"gopkg.in/yaml.v3"`)
}
