package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_NonTTYPrintsPlainProgress(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporterWithWriter(VerbosityNormal, &buf)
	r.Start(3)
	r.FileDone("a.py")
	r.Finish()
	assert.Contains(t, buf.String(), "analyzing 3 files")
}

func TestReporter_SilentPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporterWithWriter(VerbositySilent, &buf)
	r.Start(3)
	r.FileDone("a.py")
	r.Finish()
	assert.Empty(t, buf.String())
}
