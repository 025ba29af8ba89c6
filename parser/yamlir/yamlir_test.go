package yamlir

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticesec/scanner/ir"
)

func TestParse_EmptyInputFails(t *testing.T) {
	p := New()
	_, err := p.Parse("values.yaml", []byte("  \n \t "))
	assert.ErrorIs(t, err, ir.ErrEmptyInput)
}

func TestParse_FlattensMapping(t *testing.T) {
	p := New()
	file, err := p.Parse("values.yaml", []byte("a:\n  b: 1\n"))
	assert.NoError(t, err)
	assert.Len(t, file.Nodes, 1)
	assert.Equal(t, "$.a.b", file.Nodes[0].Path)
}
