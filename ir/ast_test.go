package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileAst_AddAndWalk(t *testing.T) {
	a := NewFileAst()
	root := &AstNode{ID: "1", Kind: "Module"}
	a.Add(root)
	call := &AstNode{ID: "2", Parent: "1", Kind: "CallExpression", Value: "eval"}
	a.Add(call)

	assert.Equal(t, []string{"2"}, a.Get("1").Children)

	var visited []string
	a.Walk(func(n *AstNode) { visited = append(visited, n.ID) })
	assert.Equal(t, []string{"1", "2"}, visited)
}

func TestFileAst_Ancestors(t *testing.T) {
	a := NewFileAst()
	a.Add(&AstNode{ID: "1", Kind: "Module"})
	a.Add(&AstNode{ID: "2", Parent: "1", Kind: "FunctionDefinition"})
	a.Add(&AstNode{ID: "3", Parent: "2", Kind: "CallExpression"})

	assert.Equal(t, []string{"2", "1"}, a.Ancestors("3"))
}

func TestDFG_SuccessorsPredecessors(t *testing.T) {
	g := NewDFG()
	g.AddNode(&DFNode{ID: "d1", Name: "user", Kind: DFDef})
	g.AddNode(&DFNode{ID: "u1", Name: "user", Kind: DFUse})
	g.AddEdge("d1", "u1")

	assert.Equal(t, []string{"u1"}, g.Successors("d1"))
	assert.Equal(t, []string{"d1"}, g.Predecessors("u1"))
}
