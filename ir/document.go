package ir

// IRNode is a flattened key/value entry produced by a structured-document
// front-end (YAML/JSON/Dockerfile). YAML and JSON paths use dotted/indexed
// notation rooted at "$", e.g. "$.spec.template.spec.containers[0].image";
// Dockerfile paths are "/" plus the tree-sitter node type, e.g.
// "/from_instruction". JsonPath matchers compare Path by exact string
// equality, so a rule path carries the same "$." root (§3).
type IRNode struct {
	ID    string
	Kind  string // "scalar" for YAML/JSON leaves; the uppercase instruction keyword (e.g. "FROM") for Dockerfile
	Path  string
	Value interface{}
	Meta  Location
}

// NewIRNode builds an IRNode, deriving its id from (file, line, column, path)
// per the stable-id invariant.
func NewIRNode(kind, path string, value interface{}, loc Location) IRNode {
	return IRNode{
		ID:    NodeID(loc.File, loc.Line, loc.Column, path),
		Kind:  kind,
		Path:  path,
		Value: value,
		Meta:  loc,
	}
}
