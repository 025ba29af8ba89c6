// Package generic is the textual fallback parser for file types with no
// structural parser: Source is retained for TextRegex/TextRegexMulti
// matchers, but no Ast/DFG is built (§4.1).
package generic

import (
	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/parser"
)

// Parser is the no-structure textual fallback.
type Parser struct{}

// New returns a generic parser.
func New() *Parser { return &Parser{} }

func (p *Parser) Parse(path string, content []byte) (*ir.FileIR, error) {
	if err := parser.CheckEmptyInput(content); err != nil {
		return nil, err
	}
	file := ir.NewFileIR(path, ir.FileTypeGeneric)
	file.SetSource(string(content))
	return file, nil
}
