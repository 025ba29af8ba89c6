package engine

import (
	"encoding/json"
	"sync"

	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/rules"
	"github.com/latticesec/scanner/wasmpolicy"
)

// wasmEvaluators caches one warmed-up Evaluator per (wasm_path,
// entrypoint), since many rules may share a policy module and warmup is
// expensive (§4.7: "warmed up at startup").
var (
	wasmMu         sync.Mutex
	wasmEvaluators = map[string]*wasmpolicy.Evaluator{}
)

func wasmEvaluatorFor(m *rules.RegoWasmMatcher) *wasmpolicy.Evaluator {
	key := m.WasmPath + "#" + m.Entrypoint
	wasmMu.Lock()
	defer wasmMu.Unlock()
	if ev, ok := wasmEvaluators[key]; ok {
		return ev
	}
	ev := wasmpolicy.NewEvaluator(m.WasmPath, m.Entrypoint, wasmpolicy.DefaultLimits)
	if err := ev.Warmup(); err != nil {
		emit(MatchResult{RuleID: key, File: m.WasmPath, Matched: false})
	}
	wasmEvaluators[key] = ev
	return ev
}

// wasmFileIRDocument is the JSON input document handed to the policy: a
// reduced projection of FileIR restricted to what a Rego policy should
// need (§4.7 "{file_type, nodes:[{path,value,...}], ...}").
type wasmFileIRDocument struct {
	FileType string          `json:"file_type"`
	FilePath string          `json:"file_path"`
	Nodes    []wasmNodeEntry `json:"nodes"`
}

type wasmNodeEntry struct {
	Path  string      `json:"path"`
	Value interface{} `json:"value"`
	Line  int         `json:"line"`
}

// matchRegoWasm evaluates a warmed-up policy against the file's nodes,
// emitting a finding at line 1 for every result whose `message` is true
// (§4.7). The matcher does not itself know which node a Rego result
// corresponds to, so findings are anchored to the file rather than a node.
func matchRegoWasm(rule *rules.CompiledRule, m *rules.RegoWasmMatcher, file *ir.FileIR) []Finding {
	ev := wasmEvaluatorFor(m)
	if !ev.Ready() {
		return nil
	}

	doc := wasmFileIRDocument{FileType: string(file.FileType), FilePath: file.FilePath}
	for _, n := range file.Nodes {
		doc.Nodes = append(doc.Nodes, wasmNodeEntry{Path: n.Path, Value: n.Value, Line: n.Meta.Line})
	}

	results, ok := ev.Evaluate(doc)
	if !ok {
		return nil
	}

	var out []Finding
	for _, r := range results {
		if r.Result["message"] {
			out = append(out, NewFinding(rule, file.FilePath, 1, 1, mustExcerpt(doc)))
		}
	}
	return out
}

func mustExcerpt(doc wasmFileIRDocument) string {
	b, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	if len(b) > 120 {
		return string(b[:120])
	}
	return string(b)
}
