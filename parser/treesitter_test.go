package parser

import (
	"testing"

	tspython "github.com/smacker/go-tree-sitter/python"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticesec/scanner/ir"
)

func TestBuildAst_PrunesErrorSubtrees(t *testing.T) {
	content := []byte("x = 1\n)))not valid python(((\n")
	file := ir.NewFileIR("broken.py", ir.FileTypePython)
	file.SetSource(string(content))

	root, hasErr := BuildAst(file, tspython.GetLanguage(), content)
	require.NotNil(t, root)
	assert.True(t, hasErr)

	file.Ast.Walk(func(n *ir.AstNode) {
		assert.NotEqual(t, "ERROR", n.Kind, "error nodes must not be indexed")
	})
}

func TestBuildAst_CleanSourceHasNoError(t *testing.T) {
	content := []byte("x = 1\n")
	file := ir.NewFileIR("clean.py", ir.FileTypePython)
	file.SetSource(string(content))

	_, hasErr := BuildAst(file, tspython.GetLanguage(), content)
	assert.False(t, hasErr)
}
