package engine

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/rules"
)

func textRule(t *testing.T, id, pattern string) *rules.CompiledRule {
	t.Helper()
	re, err := rules.CompileRegex(pattern)
	require.NoError(t, err)
	return &rules.CompiledRule{
		ID:       id,
		Severity: rules.SeverityHigh,
		Message:  "found " + pattern,
		Matcher:  &rules.TextRegexMatcher{Regex: re},
	}
}

func TestAnalyzeFile_TextRegexFindsMatch(t *testing.T) {
	file := ir.NewFileIR("app.py", ir.FileTypePython)
	file.SetSource("os.system(cmd)\nprint('ok')\n")

	e := New(DefaultConfig(), "")
	findings := e.AnalyzeFile(file, []*rules.CompiledRule{textRule(t, "py.system", `os\.system`)}, nil)

	require.Len(t, findings, 1)
	assert.Equal(t, 1, findings[0].Line)
	assert.Equal(t, "py.system", findings[0].RuleID)
}

func TestAnalyzeFile_SuppressedLineDropped(t *testing.T) {
	file := ir.NewFileIR("app.py", ir.FileTypePython)
	file.SetSource("os.system(cmd)  # nosec\n")

	e := New(DefaultConfig(), "")
	e.cfg.SuppressionsOn = true
	file.Suppressed[1] = struct{}{}
	findings := e.AnalyzeFile(file, []*rules.CompiledRule{textRule(t, "py.system", `os\.system`)}, nil)
	assert.Empty(t, findings)
}

func TestAnalyzeFile_LanguageFilterSkipsRule(t *testing.T) {
	file := ir.NewFileIR("app.rs", ir.FileTypeRust)
	file.SetSource("os.system(cmd)\n")

	rule := textRule(t, "py.system", `os\.system`)
	rule.Languages = map[ir.FileType]bool{ir.FileTypePython: true}

	e := New(DefaultConfig(), "")
	findings := e.AnalyzeFile(file, []*rules.CompiledRule{rule}, nil)
	assert.Empty(t, findings)
}

func TestAnalyzeFiles_DeterministicAtOneThread(t *testing.T) {
	files := []*ir.FileIR{
		ir.NewFileIR("a.py", ir.FileTypePython),
		ir.NewFileIR("b.py", ir.FileTypePython),
	}
	files[0].SetSource("eval(x)\n")
	files[1].SetSource("eval(y)\n")

	ruleSet := []*rules.CompiledRule{textRule(t, "py.eval", `eval\(`)}

	cfg := DefaultConfig()
	cfg.Threads = 1
	e1 := New(cfg, "")
	e2 := New(cfg, "")

	f1 := e1.AnalyzeFiles(files, ruleSet, nil)
	f2 := e2.AnalyzeFiles(files, ruleSet, nil)

	require.Len(t, f1, 2)
	require.Len(t, f2, 2)
	assert.ElementsMatch(t, idsOf(f1), idsOf(f2))
}

func idsOf(fs []Finding) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.ID
	}
	return out
}

func TestDedup_PreservesFirstSeenOrder(t *testing.T) {
	findings := []Finding{
		{ID: "a", Message: "first"},
		{ID: "b", Message: "second"},
		{ID: "a", Message: "duplicate"},
	}
	out := Dedup(findings)
	require.Len(t, out, 2)
	assert.Equal(t, "first", out[0].Message)
	assert.Equal(t, "second", out[1].Message)
}

func TestDetermineExitCode(t *testing.T) {
	high := Finding{Severity: rules.SeverityHigh}
	low := Finding{Severity: rules.SeverityLow}

	assert.Equal(t, ExitCodeError, DetermineExitCode(nil, rules.SeverityHigh, true))
	assert.Equal(t, ExitCodeSuccess, DetermineExitCode([]Finding{low}, rules.SeverityHigh, false))
	assert.Equal(t, ExitCodeFindings, DetermineExitCode([]Finding{low, high}, rules.SeverityHigh, false))
	assert.Equal(t, ExitCodeSuccess, DetermineExitCode([]Finding{high}, "", false))
}

func TestAnalysisCache_CorruptFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/cache.json"
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o644))

	c := NewAnalysisCache(path)
	_, ok := c.Get("anything")
	assert.False(t, ok)
}

type recordingSink struct {
	events []CorrelatedEvent
	raw    []DebugEvent
}

func (s *recordingSink) Observe(ev DebugEvent) {
	s.raw = append(s.raw, ev)
	if ce, ok := ev.(CorrelatedEvent); ok {
		s.events = append(s.events, ce)
	}
}

func TestEngine_DebugEventsCarryRunID(t *testing.T) {
	sink := &recordingSink{}
	InstallDebugSink(sink)
	defer InstallDebugSink(nil)

	file := ir.NewFileIR("app.py", ir.FileTypePython)
	file.SetSource("eval(x)\n")

	e := New(DefaultConfig(), "")
	require.NotEmpty(t, e.RunID)
	e.AnalyzeFile(file, []*rules.CompiledRule{textRule(t, "py.eval", `eval\(`)}, nil)

	require.NotEmpty(t, sink.events)
	for _, ev := range sink.events {
		assert.Equal(t, e.RunID, ev.RunID)
	}
}

func TestLoadRules_EmitsRuleCompiled(t *testing.T) {
	sink := &recordingSink{}
	InstallDebugSink(sink)
	defer InstallDebugSink(nil)

	src := []byte(`
rules:
  - id: py.eval
    severity: high
    message: dangerous eval
    regex: "eval\\("
`)
	compiled, err := LoadRules(map[string][]byte{"rules.yaml": src})
	require.NoError(t, err)
	require.Len(t, compiled, 1)

	var found bool
	for _, ev := range sink.raw {
		if rc, ok := ev.(RuleCompiled); ok && rc.ID == "py.eval" {
			found = true
		}
	}
	assert.True(t, found, "expected a RuleCompiled event for py.eval")
}

func TestAnalyzeFiles_MetricsCountFilesAndRules(t *testing.T) {
	files := []*ir.FileIR{
		ir.NewFileIR("a.py", ir.FileTypePython),
		ir.NewFileIR("b.py", ir.FileTypePython),
	}
	files[0].SetSource("eval(x)\n")
	files[1].SetSource("eval(y)\n")

	ruleSet := []*rules.CompiledRule{textRule(t, "py.eval", `eval\(`)}

	metrics := NewMetrics()
	e := New(DefaultConfig(), "")
	findings := e.AnalyzeFiles(files, ruleSet, metrics)

	require.Len(t, findings, 2)
	assert.EqualValues(t, 2, metrics.FilesAnalyzed.Load())
	assert.EqualValues(t, 2, metrics.RulesEvaluated.Load())
	assert.EqualValues(t, 0, metrics.CacheHits.Load())
	assert.EqualValues(t, 2, metrics.CacheMisses.Load())

	snap := metrics.Snapshot()
	assert.EqualValues(t, 2, snap["files_analyzed"])
}

func TestAnalyzeFile_NilMetricsIsSafe(t *testing.T) {
	file := ir.NewFileIR("app.py", ir.FileTypePython)
	file.SetSource("eval(x)\n")

	e := New(DefaultConfig(), "")
	assert.NotPanics(t, func() {
		e.AnalyzeFile(file, []*rules.CompiledRule{textRule(t, "py.eval", `eval\(`)}, nil)
	})
}

func TestRuleCache_HitsAndMisses(t *testing.T) {
	c := NewRuleCache(8)
	calls := 0
	compute := func() []Finding {
		calls++
		return []Finding{{ID: "x"}}
	}

	_, hit := c.GetOrInsert("f.py", "rule1", compute)
	assert.False(t, hit)
	_, hit = c.GetOrInsert("f.py", "rule1", compute)
	assert.True(t, hit)

	assert.Equal(t, 1, calls)
	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}
