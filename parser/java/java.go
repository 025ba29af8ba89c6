// Package java parses Java source the same way parser/python does: a
// tree-sitter AST plus a shared regex statement pass.
package java

import (
	tsjava "github.com/smacker/go-tree-sitter/java"

	"github.com/latticesec/scanner/catalog"
	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/parser"
)

// Parser parses Java files.
type Parser struct {
	Catalog *catalog.Catalog
}

// New returns a Java parser using the default catalog.
func New() *Parser {
	return &Parser{Catalog: catalog.Default()}
}

func (p *Parser) Parse(path string, content []byte) (*ir.FileIR, error) {
	if err := parser.CheckEmptyInput(content); err != nil {
		return nil, err
	}

	file := ir.NewFileIR(path, ir.FileTypeJava)
	file.SetSource(string(content))

	_, hasErr := parser.BuildAst(file, tsjava.GetLanguage(), content)
	if hasErr {
		file.MarkParseError()
	}

	parser.ExtractStatements(file, file.Source, ir.FileTypeJava, p.Catalog)
	return file, nil
}
