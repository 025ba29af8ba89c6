package parser

import (
	"regexp"
	"strings"

	"github.com/latticesec/scanner/catalog"
	"github.com/latticesec/scanner/dfg"
	"github.com/latticesec/scanner/ir"
)

// Grounded on the teacher's statement-at-a-time taint walk
// (graph/callgraph/analysis/taint/analyzer.go AnalyzeIntraProceduralTaint),
// but operating directly on source lines rather than a pre-built Statement
// list: each language parser's tree-sitter pass handles structural AST, and
// this pass builds the DFG/symbol table the rule engine's taint matcher
// consults, classifying calls via the catalog package instead of the
// teacher's hardcoded stdlib tables.

var assignRe = regexp.MustCompile(`^\s*([A-Za-z_$][\w.]*)\s*=\s*([^=].*?)\s*;?\s*$`)
var callRe = regexp.MustCompile(`([A-Za-z_$][\w.]*)\s*\(`)

// ExtractStatements walks source line by line, building Def/Use/Assign DFG
// nodes and classifying any call target found against cat for lang. It is
// the shared core of the python/rust/java/php parsers (§4.2).
func ExtractStatements(file *ir.FileIR, source string, lang ir.FileType, cat *catalog.Catalog) {
	b := dfg.NewBuilder(file)
	lines := strings.Split(source, "\n")

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		loc := ir.Location{File: file.FilePath, Line: i + 1}

		if m := assignRe.FindStringSubmatch(raw); m != nil {
			lhs, rhs := m[1], m[2]
			handleAssignment(file, b, cat, lang, lhs, rhs, loc)
			continue
		}
		if call := callRe.FindStringSubmatchIndex(raw); call != nil {
			handleBareCall(file, b, cat, lang, raw[call[2]:call[3]], raw[call[1]:], loc)
		}
	}
}

func handleAssignment(file *ir.FileIR, b *dfg.Builder, cat *catalog.Catalog, lang ir.FileType, lhs, rhs string, loc ir.Location) {
	callMatch := callRe.FindStringSubmatch(rhs)
	if callMatch == nil {
		// Plain alias: lhs = rhs (rhs is a bare name/expression).
		rhsName := strings.TrimSpace(rhs)
		b.Use(rhsName, loc)
		b.Assign(lhs, rhsName, loc)
		return
	}

	callee := callMatch[1]
	kind, known := cat.Classify(lang, callee)
	file.SymbolTypes[callee] = kind

	switch {
	case known && kind == ir.SymbolSource:
		b.Def(lhs, loc)
		return
	case known && kind == ir.SymbolSanitizer:
		b.Def(lhs, loc)
		dfg.MarkSanitized(file.Symbols, lhs)
		return
	default:
		// Generic call: taint passes through if any argument is already
		// tainted, the same conservative propagation the teacher's
		// propagateCall applies before decaying confidence — this IR
		// tracks sanitized/not rather than a confidence score, so there is
		// no decay to apply.
		var argDefs []string
		for _, arg := range extractArgNames(rhs) {
			if sym, ok := file.Symbols[arg]; ok && sym.Def != "" && !dfg.IsSanitized(file.Symbols, arg) {
				argDefs = append(argDefs, sym.Def)
			}
		}
		id := b.Def(lhs, loc)
		for _, d := range argDefs {
			file.DFG.AddEdge(d, id)
		}
	}
}

func handleBareCall(file *ir.FileIR, b *dfg.Builder, cat *catalog.Catalog, lang ir.FileType, callee, args string, loc ir.Location) {
	kind, known := cat.Classify(lang, callee)
	if !known {
		return
	}
	file.SymbolTypes[callee] = kind
	if kind == ir.SymbolSink {
		// A bare sink call with no assignment still needs a Use node for
		// any argument names so the taint tracker can see the edge; args
		// is the rest of the line after the call's opening parenthesis.
		for _, arg := range extractArgNames(args) {
			b.Use(arg, loc)
		}
	}
}

var argSplitRe = regexp.MustCompile(`[,()]+`)

func extractArgNames(expr string) []string {
	parts := argSplitRe.Split(expr, -1)
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" && isIdentLike(p) {
			out = append(out, p)
		}
	}
	return out
}

func isIdentLike(s string) bool {
	for i, r := range s {
		if i == 0 && !(r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
		if !(r == '_' || r == '.' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}
