package taint

import (
	"github.com/latticesec/scanner/dfg"
	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/rules"
)

// Flow is one confirmed source-to-sink taint path (§4.8).
type Flow struct {
	Name                  string
	SourceLine, SourceCol int
	SinkLine, SinkCol     int
}

// Tracker runs a TaintRuleMatcher against one FileIR's DFG and symbol
// table.
type Tracker struct {
	CallGraph *CallGraph
}

// NewTracker returns a Tracker with no interprocedural call graph; Run
// still performs full intraprocedural tracking.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Run applies sources/sanitizers/reclass/sinks in the order §4.8
// specifies, then walks the DFG from each source definition, and returns
// one Flow per (source, sink) pair connected by an unsanitized path.
func (t *Tracker) Run(file *ir.FileIR, tr *rules.TaintRuleMatcher) []Flow {
	if !file.HasSource {
		return nil
	}

	var sourceSites []Site
	for _, p := range tr.Sources {
		sourceSites = append(sourceSites, MatchPattern(p, file.Source)...)
	}

	for _, p := range tr.Sanitizers {
		for _, site := range MatchPattern(p, file.Source) {
			dfg.MarkSanitized(file.Symbols, site.Name)
		}
	}
	for _, p := range tr.Reclass {
		for _, site := range MatchPattern(p, file.Source) {
			dfg.MarkSanitized(file.Symbols, site.Name)
		}
	}

	var sinkSites []Site
	for _, p := range tr.Sinks {
		sinkSites = append(sinkSites, MatchPattern(p, file.Source)...)
	}
	if len(sourceSites) == 0 || len(sinkSites) == 0 {
		return nil
	}

	nodesByName := indexNodesByName(file.DFG)

	var flows []Flow
	for _, src := range sourceSites {
		var starts []string
		for _, id := range nodesByName[src.Name] {
			if k := file.DFG.Nodes[id].Kind; k == ir.DFDef || k == ir.DFParam {
				starts = append(starts, id)
			}
		}
		if len(starts) == 0 {
			continue
		}
		reachable := bfsUnsanitized(file.DFG, starts, t.CallGraph)
		for _, sink := range sinkSites {
			if sink.Name != src.Name {
				continue
			}
			for _, id := range reachable {
				if contains(starts, id) {
					continue // the source def itself never counts as reaching the sink
				}
				n := file.DFG.Nodes[id]
				if n != nil && n.Name == sink.Name {
					flows = append(flows, Flow{
						Name:       src.Name,
						SourceLine: src.Line, SourceCol: src.Column,
						SinkLine: sink.Line, SinkCol: sink.Column,
					})
					break
				}
			}
		}
	}
	return flows
}

func indexNodesByName(g *ir.DFG) map[string][]string {
	out := make(map[string][]string)
	for id, n := range g.Nodes {
		out[n.Name] = append(out[n.Name], id)
	}
	return out
}

// bfsUnsanitized returns every node id reachable from starts by following
// def/use edges (and, when cg is set, interprocedural call/call_return
// edges) without ever passing through a node with Sanitized=true (§4.8:
// "no node along the path has sanitized=true").
func bfsUnsanitized(g *ir.DFG, starts []string, cg *CallGraph) []string {
	visited := make(map[string]bool)
	queue := append([]string{}, starts...)
	var out []string

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true

		n := g.Nodes[id]
		if n == nil {
			continue
		}
		if n.Sanitized && !contains(starts, id) {
			continue // sanitized nodes don't propagate further
		}
		out = append(out, id)

		for _, succ := range g.Successors(id) {
			if !visited[succ] {
				queue = append(queue, succ)
			}
		}
		if cg != nil {
			for _, succ := range cg.InterproceduralSuccessors(g, id) {
				if !visited[succ] {
					queue = append(queue, succ)
				}
			}
		}
	}
	return out
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
