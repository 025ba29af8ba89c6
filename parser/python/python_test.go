package python

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticesec/scanner/ir"
)

func TestParse_EmptyInputFails(t *testing.T) {
	p := New()

	_, err := p.Parse("empty.py", []byte(""))
	assert.ErrorIs(t, err, ir.ErrEmptyInput)

	_, err = p.Parse("whitespace.py", []byte("  \n\t \n"))
	assert.ErrorIs(t, err, ir.ErrEmptyInput)
}

func TestParse_PartialErrorMarksFileAndEmitsSpecialSymbol(t *testing.T) {
	p := New()

	file, err := p.Parse("broken.py", []byte("x = 1\n)))not valid python(((\n"))
	require.NoError(t, err)
	assert.True(t, file.FailedParse)

	sym, ok := file.Symbols["__parse_error__"]
	require.True(t, ok, "expected a __parse_error__ special symbol")
	assert.Equal(t, ir.SymbolSpecial, file.SymbolTypes["__parse_error__"])
	assert.NotNil(t, sym)
}

func TestParse_CleanSourceHasNoParseError(t *testing.T) {
	p := New()

	file, err := p.Parse("app.py", []byte("x = eval(input())\n"))
	require.NoError(t, err)
	assert.False(t, file.FailedParse)
	_, ok := file.Symbols["__parse_error__"]
	assert.False(t, ok)
}
