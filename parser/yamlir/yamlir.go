// Package yamlir flattens a YAML document into one IRNode per leaf value,
// addressed by its JSONPath-style location, grounded on the teacher's
// ParseYAMLString tree builder (graph/parser_yaml.go) and extended to
// resolve merge keys (`<<`) and anchors/aliases the teacher's YAMLNode
// conversion left as opaque scalars.
package yamlir

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/parser"
)

// Parser parses YAML documents.
type Parser struct{}

// New returns a YAML parser.
func New() *Parser { return &Parser{} }

func (p *Parser) Parse(path string, content []byte) (*ir.FileIR, error) {
	if err := parser.CheckEmptyInput(content); err != nil {
		return nil, err
	}

	file := ir.NewFileIR(path, ir.FileTypeYAML)
	file.SetSource(string(content))

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		file.MarkParseError()
		return file, nil
	}

	root := &doc
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root = doc.Content[0]
	}

	flatten(file, path, "$", root)
	return file, nil
}

// flatten walks a resolved YAML node tree emitting one IRNode per scalar
// leaf, and recurring into mappings/sequences with an extended JSONPath.
func flatten(file *ir.FileIR, path, jsonPath string, node *yaml.Node) {
	if node == nil {
		return
	}
	resolved := resolveAlias(node)

	switch resolved.Kind {
	case yaml.MappingNode:
		flattenMapping(file, path, jsonPath, resolved)
	case yaml.SequenceNode:
		for i, item := range resolved.Content {
			flatten(file, path, fmt.Sprintf("%s[%d]", jsonPath, i), item)
		}
	case yaml.ScalarNode:
		loc := ir.Location{File: path, Line: resolved.Line, Column: resolved.Column}
		file.Nodes = append(file.Nodes, ir.NewIRNode("scalar", jsonPath, scalarValue(resolved), loc))
	}
}

// flattenMapping merges `<<` keys into the surrounding mapping before
// emitting its own keys, so a field inherited through a merge key resolves
// to the same JSONPath as if it had been written out explicitly.
func flattenMapping(file *ir.FileIR, path, jsonPath string, node *yaml.Node) {
	merged := map[string]*yaml.Node{}
	explicit := map[string]bool{}
	var order []string

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		val := node.Content[i+1]
		if key.Value == "<<" {
			for _, src := range mergeSources(val) {
				for j := 0; j+1 < len(src.Content); j += 2 {
					k := src.Content[j].Value
					if explicit[k] {
						continue
					}
					if _, exists := merged[k]; !exists {
						order = append(order, k)
					}
					merged[k] = src.Content[j+1]
				}
			}
			continue
		}
		k := key.Value
		if _, exists := merged[k]; !exists {
			order = append(order, k)
		}
		merged[k] = val
		explicit[k] = true
	}

	for _, k := range order {
		flatten(file, path, jsonPath+"."+k, merged[k])
	}
}

func mergeSources(val *yaml.Node) []*yaml.Node {
	resolved := resolveAlias(val)
	if resolved.Kind == yaml.SequenceNode {
		out := make([]*yaml.Node, 0, len(resolved.Content))
		for _, item := range resolved.Content {
			out = append(out, resolveAlias(item))
		}
		return out
	}
	return []*yaml.Node{resolved}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	visited := map[*yaml.Node]bool{}
	for node.Kind == yaml.AliasNode && node.Alias != nil && !visited[node] {
		visited[node] = true
		node = node.Alias
	}
	return node
}

func scalarValue(node *yaml.Node) interface{} {
	var v interface{}
	if err := node.Decode(&v); err != nil {
		return node.Value
	}
	return v
}
