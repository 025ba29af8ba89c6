package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileRegex_StandardDialect(t *testing.T) {
	re, err := CompileRegex(`os\.system\((.*)\)`)
	require.NoError(t, err)
	assert.Equal(t, DialectStandard, re.Dialect)
	assert.True(t, re.IsMatch(`os.system("rm -rf /")`))

	matches := re.FindAllMatches(`os.system("ls")`)
	require.Len(t, matches, 1)
	assert.Equal(t, `"ls"`, matches[0].Group(1))
}

func TestCompileRegex_FancyDialectBackreference(t *testing.T) {
	re, err := CompileRegex(`(\w+)\s+\1`)
	require.NoError(t, err)
	assert.Equal(t, DialectFancy, re.Dialect)
	assert.True(t, re.IsMatch("the the cat"))
	assert.False(t, re.IsMatch("the cat"))
}

func TestCompileRegex_InvalidPattern(t *testing.T) {
	_, err := CompileRegex(`(unterminated`)
	assert.Error(t, err)
}
