package engine

import (
	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/rules"
	"github.com/latticesec/scanner/taint"
)

// matchTaintRule dispatches a TaintRuleMatcher to the taint package and
// converts each confirmed Flow into a Finding anchored at the sink site
// (§4.8: "Finding line/column = sink site").
func matchTaintRule(rule *rules.CompiledRule, m *rules.TaintRuleMatcher, file *ir.FileIR, cg *taint.CallGraph) []Finding {
	tracker := &taint.Tracker{CallGraph: cg}
	flows := tracker.Run(file, m)

	var out []Finding
	for _, f := range flows {
		out = append(out, NewFinding(rule, file.FilePath, f.SinkLine, f.SinkCol, f.Name))
	}
	return out
}
