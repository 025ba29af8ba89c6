package parser

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/latticesec/scanner/ir"
)

// BuildAst runs tree-sitter with lang over content and records every named
// node into file.Ast, returning the root node for further (statement-level)
// extraction. Grounded on the teacher's convertASTToGraph traversal
// (graph/docker/parser.go), generalized from Dockerfile instructions to any
// tree-sitter grammar.
func BuildAst(file *ir.FileIR, lang *sitter.Language, content []byte) (*sitter.Node, bool) {
	p := sitter.NewParser()
	p.SetLanguage(lang)

	tree, err := p.ParseCtx(context.Background(), nil, content)
	if err != nil {
		file.MarkParseError()
		return nil, false
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		file.MarkParseError()
		return nil, false
	}

	file.Ast = ir.NewFileAst()
	walkTreeSitter(file, root, "", content)
	return root, root.HasError()
}

// walkTreeSitter recursively converts tree-sitter nodes into ir.AstNode
// entries, assigning each a stable id from its location and type. A node
// whose own type is "ERROR" is pruned along with its whole subtree: only
// error-free structure is indexed (§4.1 "error tolerance").
func walkTreeSitter(file *ir.FileIR, node *sitter.Node, parentID string, source []byte) string {
	if node.Type() == "ERROR" {
		return ""
	}

	start := node.StartPoint()
	loc := ir.Location{File: file.FilePath, Line: int(start.Row) + 1, Column: int(start.Column) + 1}

	value := ""
	if node.ChildCount() == 0 {
		value = node.Content(source)
	}

	id := ir.NodeID(file.FilePath, loc.Line, loc.Column, node.Type())
	astNode := &ir.AstNode{ID: id, Parent: parentID, Kind: node.Type(), Value: value, Meta: loc}
	file.Ast.Add(astNode)

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "ERROR" {
			continue
		}
		walkTreeSitter(file, child, id, source)
	}
	return id
}
