package dockerfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticesec/scanner/ir"
)

func TestParse_EmptyInputFails(t *testing.T) {
	p := New()
	_, err := p.Parse("Dockerfile", []byte("   \n\t\n"))
	assert.ErrorIs(t, err, ir.ErrEmptyInput)
}

func TestParse_ExtractsInstructions(t *testing.T) {
	p := New()
	file, err := p.Parse("Dockerfile", []byte("FROM alpine\nRUN echo hi\n"))
	require.NoError(t, err)
	require.Len(t, file.Nodes, 2)
	assert.Equal(t, "FROM", file.Nodes[0].Kind)
	assert.False(t, file.FailedParse)
}
