// Package dfg builds and resolves the per-file data-flow graph and symbol
// table the parsers populate (§3, §4.2), grounded on the teacher's
// statement-walking taint builder (graph/callgraph/builder/taint.go,
// graph/callgraph/analysis/taint/analyzer.go) adapted from a flat
// statement list to the spec's Def/Use/Assign/Branch node graph.
package dfg

import "github.com/latticesec/scanner/ir"

// maxAliasChain bounds alias-chain resolution so a corrupt or adversarial
// alias cycle cannot hang analysis; §4.2.6 requires cycle-breaking, not a
// specific bound.
const maxAliasChain = 64

// ResolveAlias walks AliasOf chains in symbols starting at name to its
// canonical root, breaking cycles with a visited set. It returns the root
// name and whether the root (or any symbol visited along the chain) is
// itself marked Sanitized.
func ResolveAlias(symbols map[string]*ir.Symbol, name string) (root string, sanitized bool) {
	visited := make(map[string]bool, 4)
	cur := name
	for i := 0; i < maxAliasChain; i++ {
		if visited[cur] {
			return cur, sanitized
		}
		visited[cur] = true

		sym, ok := symbols[cur]
		if !ok {
			return cur, sanitized
		}
		if sym.Sanitized {
			sanitized = true
		}
		if sym.AliasOf == "" {
			return cur, sanitized
		}
		cur = sym.AliasOf
	}
	return cur, sanitized
}

// IsSanitized reports whether name resolves, through its alias closure, to
// a sanitized symbol (§4.2.6 "alias-closure sanitization propagation").
func IsSanitized(symbols map[string]*ir.Symbol, name string) bool {
	_, sanitized := ResolveAlias(symbols, name)
	if sanitized {
		return true
	}
	if sym, ok := symbols[name]; ok {
		return sym.Sanitized
	}
	return false
}

// MarkSanitized marks name's symbol (creating it if absent) as sanitized,
// e.g. after the builder recognizes a call to a catalog sanitizer.
func MarkSanitized(symbols map[string]*ir.Symbol, name string) {
	sym, ok := symbols[name]
	if !ok {
		sym = &ir.Symbol{Name: name}
		symbols[name] = sym
	}
	sym.Sanitized = true
}

// SetAlias records that name is a direct alias of target, e.g. after a
// simple assignment `y = x` (§4.2.6).
func SetAlias(symbols map[string]*ir.Symbol, name, target string) {
	sym, ok := symbols[name]
	if !ok {
		sym = &ir.Symbol{Name: name}
		symbols[name] = sym
	}
	sym.AliasOf = target
}
