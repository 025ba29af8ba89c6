package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticesec/scanner/ir"
)

func TestDefault_PythonClassification(t *testing.T) {
	c := Default()

	kind, ok := c.Classify(ir.FileTypePython, "os.system")
	assert.True(t, ok)
	assert.Equal(t, ir.SymbolSink, kind)

	assert.True(t, c.IsSanitizer(ir.FileTypePython, "html.escape"))
	assert.False(t, c.IsSanitizer(ir.FileTypePython, "os.system"))

	_, ok = c.Classify(ir.FileTypePython, "totally_unknown_name")
	assert.False(t, ok)
}

func TestExtend_RuntimeAddition(t *testing.T) {
	c := New()
	_, ok := c.Classify(ir.FileTypePython, "custom_sink")
	assert.False(t, ok)

	c.Extend(ir.FileTypePython, []Entry{{Name: "custom_sink", Kind: ir.SymbolSink}})
	kind, ok := c.Classify(ir.FileTypePython, "custom_sink")
	assert.True(t, ok)
	assert.Equal(t, ir.SymbolSink, kind)
}

func TestClassify_MacroQualifiedName(t *testing.T) {
	c := New()
	c.Extend(ir.FileTypeRust, []Entry{{Name: "sanitize", Kind: ir.SymbolSanitizer}})

	kind, ok := c.Classify(ir.FileTypeRust, "macro::sanitize")
	assert.True(t, ok)
	assert.Equal(t, ir.SymbolSanitizer, kind)
}
