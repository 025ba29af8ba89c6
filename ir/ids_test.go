package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeID_Stable(t *testing.T) {
	a := NodeID("main.py", 3, 1, "user")
	b := NodeID("main.py", 3, 1, "user")
	assert.Equal(t, a, b, "identical position+name must yield identical ids")
}

func TestNodeID_DriftsWithPosition(t *testing.T) {
	a := NodeID("main.py", 3, 1, "user")
	b := NodeID("main.py", 4, 1, "user")
	assert.NotEqual(t, a, b, "inserting a blank line must shift the id")
}

func TestNodeID_DriftsWithFile(t *testing.T) {
	a := NodeID("main.py", 3, 1, "user")
	b := NodeID("other.py", 3, 1, "user")
	assert.NotEqual(t, a, b)
}

func TestContentHash_Deterministic(t *testing.T) {
	h1 := ContentHash([]byte("python"), []byte("a.py"), []byte("print(1)"))
	h2 := ContentHash([]byte("python"), []byte("a.py"), []byte("print(1)"))
	assert.Equal(t, h1, h2)
}

func TestContentHash_DiffersOnContent(t *testing.T) {
	h1 := ContentHash([]byte("python"), []byte("a.py"), []byte("print(1)"))
	h2 := ContentHash([]byte("python"), []byte("a.py"), []byte("print(2)"))
	assert.NotEqual(t, h1, h2)
}
