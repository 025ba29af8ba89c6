// Package python parses Python source into a FileIR: a tree-sitter AST plus
// a regex-driven statement pass that builds the DFG and symbol table,
// grounded on the teacher's Dockerfile tree-sitter parser
// (graph/docker/parser.go) generalized to a second grammar.
package python

import (
	tspython "github.com/smacker/go-tree-sitter/python"

	"github.com/latticesec/scanner/catalog"
	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/parser"
)

// Parser parses Python files.
type Parser struct {
	Catalog *catalog.Catalog
}

// New returns a Python parser using the default catalog.
func New() *Parser {
	return &Parser{Catalog: catalog.Default()}
}

func (p *Parser) Parse(path string, content []byte) (*ir.FileIR, error) {
	if err := parser.CheckEmptyInput(content); err != nil {
		return nil, err
	}

	file := ir.NewFileIR(path, ir.FileTypePython)
	file.SetSource(string(content))

	_, hasErr := parser.BuildAst(file, tspython.GetLanguage(), content)
	if hasErr {
		file.MarkParseError()
	}

	parser.ExtractStatements(file, file.Source, ir.FileTypePython, p.Catalog)
	return file, nil
}
