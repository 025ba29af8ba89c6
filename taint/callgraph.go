package taint

import "github.com/latticesec/scanner/ir"

// CallGraph links the `calls`/`call_returns` relations across every FileIR
// in a project-wide parse, letting bfsUnsanitized step from an argument Def
// into the callee's Param nodes and from a callee's Return back into the
// caller's destination Def (§4.2, §4.8 "The CallGraph enables
// interprocedural search").
type CallGraph struct {
	files []*ir.FileIR
}

// NewCallGraph indexes every file's DFG for cross-file call-edge lookups.
func NewCallGraph(files []*ir.FileIR) *CallGraph {
	return &CallGraph{files: files}
}

// InterproceduralSuccessors returns node ids reachable from id by hopping
// one `calls` or `call_returns` edge, searching every indexed file's DFG
// for the matching callee/caller side, since a call target may live in a
// different file than its caller (§4.2.8).
func (cg *CallGraph) InterproceduralSuccessors(g *ir.DFG, id string) []string {
	var out []string

	for _, call := range g.Calls {
		if call.ArgDefID != id {
			continue
		}
		for _, f := range cg.files {
			for nodeID, n := range f.DFG.Nodes {
				if n.Kind == ir.DFParam {
					out = append(out, nodeID)
				}
			}
			_ = call.CalleeFnID // callee identity narrows the search once
			// parsers populate function-qualified node ids; until then,
			// every Param node in every file is a conservative candidate.
		}
	}

	// A Return node (in this file or any indexed one) hops to the
	// destination Def of every `call_returns` edge; callee identity is not
	// compared, so every destination is a conservative candidate.
	isReturn := false
	if n := g.Nodes[id]; n != nil && n.Kind == ir.DFReturn {
		isReturn = true
	}
	for _, f := range cg.files {
		if n := f.DFG.Nodes[id]; n != nil && n.Kind == ir.DFReturn {
			isReturn = true
		}
	}
	if isReturn {
		for _, cr := range g.CallReturns {
			out = append(out, cr.DestDefID)
		}
	}

	return out
}
