package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_MatchesGitignoreLines(t *testing.T) {
	m := Compile([]string{"*.log", "build/"})
	assert.True(t, m.Matches("debug.log"))
	assert.True(t, m.Matches("build/output.bin"))
	assert.False(t, m.Matches("main.go"))
}

func TestGlobCache_DoubleStarAnyDepth(t *testing.T) {
	c := NewGlobCache()
	re, err := c.Compile("**/vendor/*.go")
	require.NoError(t, err)
	assert.True(t, re.MatchString("pkg/vendor/lib.go"))
	assert.True(t, re.MatchString("vendor/lib.go"))
	assert.False(t, re.MatchString("pkg/vendor/sub/lib.go"))
}

func TestGlobCache_CachesCompiledRegex(t *testing.T) {
	c := NewGlobCache()
	a, err := c.Compile("*.py")
	require.NoError(t, err)
	b, err := c.Compile("*.py")
	require.NoError(t, err)
	assert.Same(t, a, b)
}
