// Package php parses PHP source the same way parser/python does: a
// tree-sitter AST plus a shared regex statement pass.
package php

import (
	tsphp "github.com/smacker/go-tree-sitter/php"

	"github.com/latticesec/scanner/catalog"
	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/parser"
)

// Parser parses PHP files.
type Parser struct {
	Catalog *catalog.Catalog
}

// New returns a PHP parser using the default catalog.
func New() *Parser {
	return &Parser{Catalog: catalog.Default()}
}

func (p *Parser) Parse(path string, content []byte) (*ir.FileIR, error) {
	if err := parser.CheckEmptyInput(content); err != nil {
		return nil, err
	}

	file := ir.NewFileIR(path, ir.FileTypePHP)
	file.SetSource(string(content))

	_, hasErr := parser.BuildAst(file, tsphp.GetLanguage(), content)
	if hasErr {
		file.MarkParseError()
	}

	parser.ExtractStatements(file, file.Source, ir.FileTypePHP, p.Catalog)
	return file, nil
}
