package jsonir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticesec/scanner/ir"
)

func TestParse_EmptyInputFails(t *testing.T) {
	p := New()
	_, err := p.Parse("config.json", []byte(" \n\t"))
	assert.ErrorIs(t, err, ir.ErrEmptyInput)
}

func TestParse_FlattensNestedObject(t *testing.T) {
	p := New()
	file, err := p.Parse("config.json", []byte(`{"a":{"b":1}}`))
	require.NoError(t, err)
	require.Len(t, file.Nodes, 1)
	assert.Equal(t, "$.a.b", file.Nodes[0].Path)
	assert.Equal(t, 1, file.Nodes[0].Meta.Line)
}

func TestParse_InvalidJSONMarksParseError(t *testing.T) {
	p := New()
	file, err := p.Parse("config.json", []byte(`{not valid`))
	require.NoError(t, err)
	assert.True(t, file.FailedParse)
}
