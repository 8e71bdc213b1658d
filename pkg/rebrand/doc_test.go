package rebrand_test

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestPackageSourcesParse keeps comments containing glob patterns from
// swallowing the package clause
func TestPackageSourcesParse(t *testing.T) {
	pkgs, err := parser.ParseDir(token.NewFileSet(), ".", nil, parser.ParseComments)
	require.NoError(t, err)

	pkg, ok := pkgs["rebrand"]
	require.True(t, ok, "package rebrand should be present")

	file, ok := pkg.Files["doc.go"]
	require.True(t, ok, "doc.go should be parsed")
	require.NotNil(t, file.Doc)
	assert.Contains(t, file.Doc.Text(), "app/blog/**/page.mdx")
}
