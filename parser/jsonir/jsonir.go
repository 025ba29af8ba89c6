// Package jsonir flattens a JSON document into one IRNode per leaf value,
// addressed by JSONPath. encoding/json discards line/column information, so
// every node's location is line 1 (§4.1 "all leaves at line 1").
package jsonir

import (
	"encoding/json"
	"fmt"

	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/parser"
)

// Parser parses JSON documents.
type Parser struct{}

// New returns a JSON parser.
func New() *Parser { return &Parser{} }

func (p *Parser) Parse(path string, content []byte) (*ir.FileIR, error) {
	if err := parser.CheckEmptyInput(content); err != nil {
		return nil, err
	}

	file := ir.NewFileIR(path, ir.FileTypeJSON)
	file.SetSource(string(content))

	var v interface{}
	if err := json.Unmarshal(content, &v); err != nil {
		file.MarkParseError()
		return file, nil
	}

	flatten(file, path, "$", v)
	return file, nil
}

func flatten(file *ir.FileIR, path, jsonPath string, v interface{}) {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, child := range val {
			flatten(file, path, jsonPath+"."+k, child)
		}
	case []interface{}:
		for i, child := range val {
			flatten(file, path, fmt.Sprintf("%s[%d]", jsonPath, i), child)
		}
	default:
		loc := ir.Location{File: path, Line: 1, Column: 1}
		file.Nodes = append(file.Nodes, ir.NewIRNode("scalar", jsonPath, val, loc))
	}
}
