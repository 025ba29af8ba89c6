package generic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticesec/scanner/ir"
)

func TestParse_EmptyInputFails(t *testing.T) {
	p := New()
	_, err := p.Parse("notes.txt", []byte(""))
	assert.ErrorIs(t, err, ir.ErrEmptyInput)
}

func TestParse_RetainsSourceOnly(t *testing.T) {
	p := New()
	file, err := p.Parse("notes.txt", []byte("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", file.Source)
	assert.Nil(t, file.Ast)
}
