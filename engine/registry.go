package engine

import (
	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/parser"
	"github.com/latticesec/scanner/parser/dockerfile"
	"github.com/latticesec/scanner/parser/generic"
	"github.com/latticesec/scanner/parser/java"
	"github.com/latticesec/scanner/parser/jsonir"
	"github.com/latticesec/scanner/parser/php"
	"github.com/latticesec/scanner/parser/python"
	"github.com/latticesec/scanner/parser/rust"
	"github.com/latticesec/scanner/parser/yamlir"
)

// NewDefaultRegistry wires every language parser this engine ships against
// the file types they handle (§4.1). It is the composition root the
// teacher's cmd/ package used to hold; the CLI itself is out of scope here
// (§1), so a library consumer builds its own entry point around this.
func NewDefaultRegistry(opts parser.Options) *parser.Registry {
	r := parser.NewRegistry(opts)
	r.Register(ir.FileTypePython, python.New())
	r.Register(ir.FileTypeRust, rust.New())
	r.Register(ir.FileTypeJava, java.New())
	r.Register(ir.FileTypePHP, php.New())
	r.Register(ir.FileTypeYAML, yamlir.New())
	r.Register(ir.FileTypeJSON, jsonir.New())
	r.Register(ir.FileTypeDockerfile, dockerfile.New())
	r.Register(ir.FileTypeGeneric, generic.New())
	return r
}
