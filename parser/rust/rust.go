// Package rust parses Rust source the same way parser/python does: a
// tree-sitter AST plus a shared regex statement pass.
package rust

import (
	tsrust "github.com/smacker/go-tree-sitter/rust"

	"github.com/latticesec/scanner/catalog"
	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/parser"
)

// Parser parses Rust files.
type Parser struct {
	Catalog *catalog.Catalog
}

// New returns a Rust parser using the default catalog.
func New() *Parser {
	return &Parser{Catalog: catalog.Default()}
}

func (p *Parser) Parse(path string, content []byte) (*ir.FileIR, error) {
	if err := parser.CheckEmptyInput(content); err != nil {
		return nil, err
	}

	file := ir.NewFileIR(path, ir.FileTypeRust)
	file.SetSource(string(content))

	_, hasErr := parser.BuildAst(file, tsrust.GetLanguage(), content)
	if hasErr {
		file.MarkParseError()
	}

	parser.ExtractStatements(file, file.Source, ir.FileTypeRust, p.Catalog)
	return file, nil
}
