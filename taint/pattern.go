// Package taint implements TaintPattern text matching and interprocedural
// DFG tracking for `taint:` rules (§4.8, §4.9), grounded on the teacher's
// intraprocedural taint walk (graph/callgraph/analysis/taint/analyzer.go)
// generalized from a flat statement list + confidence decay to the spec's
// DFG-edge BFS with a binary sanitized flag.
package taint

import (
	"strconv"
	"strings"

	"github.com/latticesec/scanner/rules"
)

// Site is one TaintPattern match: the file location and the "interesting
// name" extracted via Focus (§4.9).
type Site struct {
	Line, Column int
	Name         string
}

// MatchPattern scans source for p, honoring allow/deny/inside/not_inside
// and extracting Focus as the interesting name for each allow match
// (§4.9). inside/not_inside constrain the file as a whole (as written:
// "restrict matches to substrings where each inside matches some enclosing
// span") rather than per-match, matching the spec's file-level semantics
// already implemented identically for TextRegexMulti.
func MatchPattern(p rules.TaintPattern, source string) []Site {
	if len(p.Allow) == 0 {
		return nil
	}
	if p.Deny != nil && p.Deny.IsMatch(source) {
		return nil
	}
	for _, in := range p.Inside {
		if !in.IsMatch(source) {
			return nil
		}
	}
	for _, notIn := range p.NotInside {
		if notIn.IsMatch(source) {
			return nil
		}
	}

	var sites []Site
	lines := strings.Split(source, "\n")
	for _, allow := range p.Allow {
		for i, line := range lines {
			for _, m := range allow.FindAllMatches(line) {
				sites = append(sites, Site{
					Line:   i + 1,
					Column: m.Start + 1,
					Name:   focusValue(p.Focus, m),
				})
			}
		}
	}
	return sites
}

// focusValue resolves Focus ("" or "$0".."$9") against a match's capture
// groups, falling back to the whole match (§4.9).
func focusValue(focus string, m rules.Match) string {
	if focus == "" {
		return m.Group(0)
	}
	trimmed := strings.TrimPrefix(focus, "$")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return m.Group(0)
	}
	return m.Group(n)
}
