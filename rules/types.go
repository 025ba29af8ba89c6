// Package rules compiles YAML rule definitions into the closed set of typed
// matchers the analysis engine dispatches on (§3 "Rule (compiled)", §4.3).
package rules

import "github.com/latticesec/scanner/ir"

// Severity is the closed set a rule's severity must parse to (§3).
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityInfo: 0, SeverityLow: 1, SeverityMedium: 2,
	SeverityHigh: 3, SeverityError: 4, SeverityCritical: 5,
}

// Ge reports whether s is at least as severe as other.
func (s Severity) Ge(other Severity) bool {
	return severityRank[s] >= severityRank[other]
}

// MatcherKind tags the closed set of matcher representations (§3).
type MatcherKind string

const (
	KindTextRegex      MatcherKind = "text_regex"
	KindTextRegexMulti MatcherKind = "text_regex_multi"
	KindJsonPathEq     MatcherKind = "jsonpath_eq"
	KindJsonPathRegex  MatcherKind = "jsonpath_regex"
	KindAstQuery       MatcherKind = "ast_query"
	KindAstPattern     MatcherKind = "ast_pattern"
	KindRegoWasm       MatcherKind = "rego_wasm"
	KindTaintRule      MatcherKind = "taint_rule"
)

// Matcher is the common interface every compiled matcher kind implements.
type Matcher interface {
	Kind() MatcherKind
}

// TextRegexMatcher scans source line by line (§4.5).
type TextRegexMatcher struct {
	Regex *CompiledRegex
	Scope string
}

func (*TextRegexMatcher) Kind() MatcherKind { return KindTextRegex }

// TextRegexMultiMatcher requires at least one allow match, no deny match,
// every inside match present, and every not_inside match absent (§4.5).
type TextRegexMultiMatcher struct {
	Allow     []*CompiledRegex
	Deny      *CompiledRegex // nil if unset
	Inside    []*CompiledRegex
	NotInside []*CompiledRegex
}

func (*TextRegexMultiMatcher) Kind() MatcherKind { return KindTextRegexMulti }

// JsonPathEqMatcher requires exact equality of the JSON value at Path (§4.6).
type JsonPathEqMatcher struct {
	Path  string
	Value interface{}
}

func (*JsonPathEqMatcher) Kind() MatcherKind { return KindJsonPathEq }

// JsonPathRegexMatcher requires the stringified value at Path to match Regex.
type JsonPathRegexMatcher struct {
	Path  string
	Regex *CompiledRegex
}

func (*JsonPathRegexMatcher) Kind() MatcherKind { return KindJsonPathRegex }

// AstQueryMatcher matches AST nodes by kind (and optionally value) regex
// (§4.6).
type AstQueryMatcher struct {
	KindRe  *CompiledRegex
	ValueRe *CompiledRegex // nil if unset
}

func (*AstQueryMatcher) Kind() MatcherKind { return KindAstQuery }

// MetavariableSpec constrains a single named hole in an AstPattern (§4.6,
// GLOSSARY "Metavariable").
type MetavariableSpec struct {
	Kind  string
	Value string // empty means "unconstrained"
}

// AstPatternMatcher does structural matching within an ancestor of Within
// (§4.6).
type AstPatternMatcher struct {
	NodeKind      string
	Within        string // empty means unconstrained
	Metavariables map[string]MetavariableSpec
}

func (*AstPatternMatcher) Kind() MatcherKind { return KindAstPattern }

// RegoWasmMatcher evaluates an OPA policy compiled to WebAssembly (§4.7).
type RegoWasmMatcher struct {
	WasmPath   string
	Entrypoint string
}

func (*RegoWasmMatcher) Kind() MatcherKind { return KindRegoWasm }

// TaintPattern matches file text to extract an "interesting name" via focus
// capture (§4.9).
type TaintPattern struct {
	Allow     []*CompiledRegex
	Deny      *CompiledRegex
	Inside    []*CompiledRegex
	NotInside []*CompiledRegex
	// Focus names the capture used as the tainted/sink name: "$1".."$9" for a
	// numbered group, or "" or "$0" for the whole match.
	Focus string
}

// TaintRuleMatcher is the compiled form of a `taint:` rule block (§3, §4.8).
type TaintRuleMatcher struct {
	Sources    []TaintPattern
	Sanitizers []TaintPattern
	Reclass    []TaintPattern
	Sinks      []TaintPattern
}

func (*TaintRuleMatcher) Kind() MatcherKind { return KindTaintRule }

// CompiledRule is a fully-typed, loaded rule (§3).
type CompiledRule struct {
	ID          string
	Severity    Severity
	Category    string
	Message     string
	Remediation string
	Fix         string
	Interfile   bool
	Matcher     Matcher
	Languages   map[ir.FileType]bool // empty/nil means "any"
	Sources     []string
	Sinks       []string
	SourceFile  string
}

// AppliesTo reports whether the rule's language filter admits ft.
func (r *CompiledRule) AppliesTo(ft ir.FileType) bool {
	if len(r.Languages) == 0 {
		return true
	}
	return r.Languages[ft]
}
