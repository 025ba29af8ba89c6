package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticesec/scanner/ir"
)

func TestCheckEmptyInput(t *testing.T) {
	assert.ErrorIs(t, CheckEmptyInput(nil), ir.ErrEmptyInput)
	assert.ErrorIs(t, CheckEmptyInput([]byte("")), ir.ErrEmptyInput)
	assert.ErrorIs(t, CheckEmptyInput([]byte("  \n  \t")), ir.ErrEmptyInput)
	assert.NoError(t, CheckEmptyInput([]byte("x")))
}

func TestRegistry_EmptyContentFailsWithEmptyInput(t *testing.T) {
	r := NewRegistry(Options{})
	_, err := r.Parse("app.txt", []byte("   \n  "))
	require.Error(t, err)
	assert.ErrorIs(t, err, ir.ErrEmptyInput)
}

func TestRegistry_UnregisteredTypeFallsBackToGeneric(t *testing.T) {
	r := NewRegistry(Options{})
	file, err := r.Parse("app.txt", []byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, ir.FileTypeGeneric, file.FileType)
	assert.Equal(t, "hello world", file.Source)
}
