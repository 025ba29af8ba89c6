package engine

import (
	"strings"

	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/rules"
)

// matchTextRegex scans source line by line (§4.5).
func matchTextRegex(rule *rules.CompiledRule, m *rules.TextRegexMatcher, file *ir.FileIR) []Finding {
	if !file.HasSource {
		return nil
	}
	var out []Finding
	lines := strings.Split(file.Source, "\n")
	for i, line := range lines {
		for _, match := range m.Regex.FindAllMatches(line) {
			out = append(out, NewFinding(rule, file.FilePath, i+1, match.Start+1, strings.TrimSpace(line)))
		}
	}
	return out
}

// matchTextRegexMulti requires at least one allow match, no deny match, and
// every inside/not_inside constraint (§4.5).
func matchTextRegexMulti(rule *rules.CompiledRule, m *rules.TextRegexMultiMatcher, file *ir.FileIR) []Finding {
	if !file.HasSource {
		return nil
	}
	if m.Deny != nil && m.Deny.IsMatch(file.Source) {
		return nil
	}
	for _, in := range m.Inside {
		if !in.IsMatch(file.Source) {
			return nil
		}
	}
	for _, notIn := range m.NotInside {
		if notIn.IsMatch(file.Source) {
			return nil
		}
	}

	var out []Finding
	lines := strings.Split(file.Source, "\n")
	for _, allow := range m.Allow {
		for i, line := range lines {
			for _, match := range allow.FindAllMatches(line) {
				out = append(out, NewFinding(rule, file.FilePath, i+1, match.Start+1, strings.TrimSpace(line)))
			}
		}
	}
	return out
}
