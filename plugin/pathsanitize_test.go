package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePath_StableAndOpaque(t *testing.T) {
	a := SanitizePath("/repo/src/app.py")
	b := SanitizePath("/repo/src/app.py")
	assert.Equal(t, a, b, "sanitizing the same path twice must be stable")
	assert.True(t, IsVirtualPath(a))
	assert.NotContains(t, a, "/repo/src")
}

func TestSanitizePath_DiffersByPath(t *testing.T) {
	a := SanitizePath("/repo/src/app.py")
	b := SanitizePath("/repo/src/other.py")
	assert.NotEqual(t, a, b)
}
