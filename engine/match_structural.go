package engine

import (
	"fmt"

	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/rules"
)

// matchJsonPathEq scans nodes for an IRNode at the given path with an
// exactly-equal value (§4.6).
func matchJsonPathEq(rule *rules.CompiledRule, m *rules.JsonPathEqMatcher, file *ir.FileIR) []Finding {
	var out []Finding
	for _, n := range file.Nodes {
		if n.Path == m.Path && fmt.Sprint(n.Value) == fmt.Sprint(m.Value) {
			out = append(out, NewFinding(rule, file.FilePath, n.Meta.Line, n.Meta.Column, fmt.Sprint(n.Value)))
		}
	}
	return out
}

// matchJsonPathRegex scans nodes for an IRNode at path whose stringified
// value matches the regex (§4.6).
func matchJsonPathRegex(rule *rules.CompiledRule, m *rules.JsonPathRegexMatcher, file *ir.FileIR) []Finding {
	var out []Finding
	for _, n := range file.Nodes {
		if n.Path != m.Path {
			continue
		}
		s := fmt.Sprint(n.Value)
		if m.Regex.IsMatch(s) {
			out = append(out, NewFinding(rule, file.FilePath, n.Meta.Line, n.Meta.Column, s))
		}
	}
	return out
}

// matchAstQuery traverses the AST index for nodes matching kind (and
// optionally value) regexes (§4.6).
func matchAstQuery(rule *rules.CompiledRule, m *rules.AstQueryMatcher, file *ir.FileIR) []Finding {
	if file.Ast == nil {
		return nil
	}
	var out []Finding
	file.Ast.Walk(func(n *ir.AstNode) {
		if !m.KindRe.IsMatch(n.Kind) {
			return
		}
		if m.ValueRe != nil && !m.ValueRe.IsMatch(n.Value) {
			return
		}
		out = append(out, NewFinding(rule, file.FilePath, n.Meta.Line, n.Meta.Column, n.Value))
	})
	return out
}

// matchAstPattern requires an AST node of the given kind, optionally nested
// under an ancestor of kind Within, with every declared metavariable bound
// to one of the node's children (§4.6).
func matchAstPattern(rule *rules.CompiledRule, m *rules.AstPatternMatcher, file *ir.FileIR) []Finding {
	if file.Ast == nil {
		return nil
	}
	var out []Finding
	file.Ast.Walk(func(n *ir.AstNode) {
		if n.Kind != m.NodeKind {
			return
		}
		if m.Within != "" && !hasAncestorOfKind(file.Ast, n, m.Within) {
			return
		}
		if !bindMetavariables(file.Ast, n, m.Metavariables) {
			return
		}
		out = append(out, NewFinding(rule, file.FilePath, n.Meta.Line, n.Meta.Column, n.Value))
	})
	return out
}

func hasAncestorOfKind(ast *ir.FileAst, n *ir.AstNode, kind string) bool {
	for _, id := range ast.Ancestors(n.ID) {
		if a := ast.Get(id); a != nil && a.Kind == kind {
			return true
		}
	}
	return false
}

// bindMetavariables requires every metavariable to match some child of n
// with the metavariable's kind and (if set) value. Metavariables are keyed
// by name, so each name is bound once, to the first matching child; no
// consistency check across repeated references of one name is made (§4.6).
func bindMetavariables(ast *ir.FileAst, n *ir.AstNode, mvs map[string]rules.MetavariableSpec) bool {
	bound := make(map[string]string, len(mvs))
	for name, spec := range mvs {
		found := false
		for _, childID := range n.Children {
			child := ast.Get(childID)
			if child == nil || child.Kind != spec.Kind {
				continue
			}
			if spec.Value != "" && child.Value != spec.Value {
				continue
			}
			if prior, ok := bound[name]; ok && prior != child.Value {
				return false
			}
			bound[name] = child.Value
			found = true
			break
		}
		if !found {
			return false
		}
	}
	return true
}
