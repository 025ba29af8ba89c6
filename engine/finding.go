// Package engine is the analysis engine: it loads compiled rules, walks
// FileIRs, dispatches each rule to its matcher kind, and produces
// deduplicated Findings (§4.4), grounded on the teacher's package layout
// (dsl + ruleset + output) collapsed into one cohesive package since this
// domain's loader/cache/engine split is smaller than the teacher's CLI.
package engine

import (
	"fmt"

	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/rules"
)

// Finding is one rule match at a specific location (§3).
type Finding struct {
	ID          string
	RuleID      string
	Severity    rules.Severity
	File        string
	Line        int
	Column      int
	Excerpt     string
	Message     string
	Remediation string
	Fix         string
}

// NewFinding builds a Finding and fills its stable ID from
// blake3(rule_id:file:line:column) (§3).
func NewFinding(rule *rules.CompiledRule, file string, line, column int, excerpt string) Finding {
	return Finding{
		ID:          ir.ContentHash([]byte(fmt.Sprintf("%s:%s:%d:%d", rule.ID, file, line, column))),
		RuleID:      rule.ID,
		Severity:    rule.Severity,
		File:        file,
		Line:        line,
		Column:      column,
		Excerpt:     excerpt,
		Message:     rule.Message,
		Remediation: rule.Remediation,
		Fix:         rule.Fix,
	}
}
