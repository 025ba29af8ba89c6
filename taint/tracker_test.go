package taint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/rules"
)

func mustCompile(t *testing.T, pattern string) *rules.CompiledRegex {
	t.Helper()
	re, err := rules.CompileRegex(pattern)
	require.NoError(t, err)
	return re
}

func TestMatchPattern_FocusCapture(t *testing.T) {
	p := rules.TaintPattern{
		Allow: []*rules.CompiledRegex{mustCompile(t, `tainted\s*=\s*(\w+)\(\)`)},
		Focus: "$1",
	}
	sites := MatchPattern(p, "tainted = request_get()")
	require.Len(t, sites, 1)
	assert.Equal(t, "request_get", sites[0].Name)
}

func TestMatchPattern_DenyBlocksFile(t *testing.T) {
	p := rules.TaintPattern{
		Allow: []*rules.CompiledRegex{mustCompile(t, `eval\(`)},
		Deny:  mustCompile(t, `# safe`),
	}
	sites := MatchPattern(p, "eval(x) # safe")
	assert.Empty(t, sites)
}

func TestTracker_Run_FindsDirectFlow(t *testing.T) {
	file := ir.NewFileIR("app.py", ir.FileTypePython)
	file.SetSource("tainted = request.GET\nos.system(tainted)\n")

	srcDef := &ir.DFNode{ID: "def1", Name: "tainted", Kind: ir.DFDef}
	use := &ir.DFNode{ID: "use1", Name: "tainted", Kind: ir.DFUse}
	file.DFG.AddNode(srcDef)
	file.DFG.AddNode(use)
	file.DFG.AddEdge("def1", "use1")

	tr := &rules.TaintRuleMatcher{
		Sources: []rules.TaintPattern{{Allow: []*rules.CompiledRegex{mustCompile(t, `(tainted)\s*=\s*request\.GET`)}, Focus: "$1"}},
		Sinks:   []rules.TaintPattern{{Allow: []*rules.CompiledRegex{mustCompile(t, `os\.system\((tainted)\)`)}, Focus: "$1"}},
	}

	flows := NewTracker().Run(file, tr)
	require.Len(t, flows, 1)
	assert.Equal(t, "tainted", flows[0].Name)
}

func TestTracker_Run_SanitizedBreaksFlow(t *testing.T) {
	file := ir.NewFileIR("app.py", ir.FileTypePython)
	file.SetSource("tainted = request.GET\ntainted = html.escape(tainted)\nos.system(tainted)\n")

	srcDef := &ir.DFNode{ID: "def1", Name: "tainted", Kind: ir.DFDef}
	sanitizedDef := &ir.DFNode{ID: "def2", Name: "tainted", Kind: ir.DFAssign, Sanitized: true}
	sinkUse := &ir.DFNode{ID: "use1", Name: "tainted", Kind: ir.DFUse}
	file.DFG.AddNode(srcDef)
	file.DFG.AddNode(sanitizedDef)
	file.DFG.AddNode(sinkUse)
	file.DFG.AddEdge("def1", "def2")
	file.DFG.AddEdge("def2", "use1")

	tr := &rules.TaintRuleMatcher{
		Sources: []rules.TaintPattern{{Allow: []*rules.CompiledRegex{mustCompile(t, `(tainted)\s*=\s*request\.GET`)}, Focus: "$1"}},
		Sinks:   []rules.TaintPattern{{Allow: []*rules.CompiledRegex{mustCompile(t, `os\.system\((tainted)\)`)}, Focus: "$1"}},
	}

	flows := NewTracker().Run(file, tr)
	assert.Empty(t, flows, "sanitized node must break the flow before reaching the sink name")
}
