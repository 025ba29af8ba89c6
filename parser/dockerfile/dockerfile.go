// Package dockerfile parses a Dockerfile into one IRNode per instruction
// line, grounded directly on the teacher's DockerfileParser
// (graph/docker/parser.go), adapted to emit ir.FileIR/ir.IRNode instead of
// the teacher's standalone DockerfileGraph/DockerfileNode types.
package dockerfile

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsdockerfile "github.com/smacker/go-tree-sitter/dockerfile"

	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/parser"
)

// Parser parses Dockerfiles.
type Parser struct {
	ts *sitter.Parser
}

// New returns a Dockerfile parser.
func New() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(tsdockerfile.GetLanguage())
	return &Parser{ts: p}
}

var instructionTypes = map[string]bool{
	"from_instruction": true, "run_instruction": true, "copy_instruction": true,
	"add_instruction": true, "env_instruction": true, "arg_instruction": true,
	"user_instruction": true, "expose_instruction": true, "workdir_instruction": true,
	"cmd_instruction": true, "entrypoint_instruction": true, "volume_instruction": true,
	"shell_instruction": true, "label_instruction": true, "maintainer_instruction": true,
	"onbuild_instruction": true, "stopsignal_instruction": true, "healthcheck_instruction": true,
}

func (p *Parser) Parse(path string, content []byte) (*ir.FileIR, error) {
	if err := parser.CheckEmptyInput(content); err != nil {
		return nil, err
	}

	file := ir.NewFileIR(path, ir.FileTypeDockerfile)
	file.SetSource(string(content))

	tree, err := p.ts.ParseCtx(context.Background(), nil, content)
	if err != nil {
		file.MarkParseError()
		return file, nil
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		file.MarkParseError()
	}

	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		if !instructionTypes[child.Type()] {
			continue
		}
		start := child.StartPoint()
		loc := ir.Location{File: path, Line: int(start.Row) + 1, Column: int(start.Column) + 1}
		instruction := strings.TrimSpace(child.Content(content))
		node := ir.NewIRNode(instructionKeyword(child.Type()), "/"+child.Type(), instruction, loc)
		file.Nodes = append(file.Nodes, node)
	}
	return file, nil
}

func instructionKeyword(nodeType string) string {
	return strings.ToUpper(strings.TrimSuffix(nodeType, "_instruction"))
}
