package rules

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/latticesec/scanner/ir"
)

// DuplicateRuleIdError reports a repeated `id:` across one or more loaded
// rule files (§4.3 loader validation).
type DuplicateRuleIdError struct {
	ID string
}

func (e *DuplicateRuleIdError) Error() string {
	return fmt.Sprintf("duplicate rule id: %q", e.ID)
}

// UnknownSeverityError reports a `severity:` value outside the closed set.
type UnknownSeverityError struct {
	RuleID string
	Value  string
}

func (e *UnknownSeverityError) Error() string {
	return fmt.Sprintf("rule %q: unknown severity %q", e.RuleID, e.Value)
}

// UnknownMatcherError reports a rule whose field combination does not
// resolve to any matcher kind in the closed set.
type UnknownMatcherError struct {
	RuleID string
}

func (e *UnknownMatcherError) Error() string {
	return fmt.Sprintf("rule %q: no recognizable matcher fields", e.RuleID)
}

var languageNames = map[string]ir.FileType{
	"python":     ir.FileTypePython,
	"rust":       ir.FileTypeRust,
	"java":       ir.FileTypeJava,
	"php":        ir.FileTypePHP,
	"yaml":       ir.FileTypeYAML,
	"json":       ir.FileTypeJSON,
	"dockerfile": ir.FileTypeDockerfile,
	"generic":    ir.FileTypeGeneric,
}

var severityNames = map[string]Severity{
	"info":     SeverityInfo,
	"low":      SeverityLow,
	"medium":   SeverityMedium,
	"high":     SeverityHigh,
	"error":    SeverityError,
	"critical": SeverityCritical,
}

// LoadBytes parses one YAML rule document and compiles each entry into a
// CompiledRule. sourceFile is recorded on every rule for diagnostics.
func LoadBytes(data []byte, sourceFile string) ([]*CompiledRule, error) {
	var doc rawRuleFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", sourceFile, err)
	}
	out := make([]*CompiledRule, 0, len(doc.Rules))
	for _, raw := range doc.Rules {
		cr, err := compileRule(raw, sourceFile)
		if err != nil {
			return nil, err
		}
		out = append(out, cr)
	}
	return out, nil
}

// LoadAll compiles rules from multiple sources, rejecting duplicate ids
// across the whole set (§4.3).
func LoadAll(sources map[string][]byte) ([]*CompiledRule, error) {
	seen := make(map[string]bool)
	var all []*CompiledRule
	for name, data := range sources {
		rules, err := LoadBytes(data, name)
		if err != nil {
			return nil, err
		}
		for _, r := range rules {
			if seen[r.ID] {
				return nil, &DuplicateRuleIdError{ID: r.ID}
			}
			seen[r.ID] = true
			all = append(all, r)
		}
	}
	return all, nil
}

func compileRule(raw rawRule, sourceFile string) (*CompiledRule, error) {
	sev := SeverityMedium
	if raw.Severity != "" {
		s, ok := severityNames[strings.ToLower(raw.Severity)]
		if !ok {
			return nil, &UnknownSeverityError{RuleID: raw.ID, Value: raw.Severity}
		}
		sev = s
	}

	langs, err := compileLanguages(raw.Languages)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", raw.ID, err)
	}

	matcher, err := compileMatcher(raw)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", raw.ID, err)
	}

	return &CompiledRule{
		ID:          raw.ID,
		Severity:    sev,
		Category:    raw.Category,
		Message:     raw.Message,
		Remediation: raw.Remediation,
		Fix:         raw.Fix,
		Interfile:   raw.Interfile,
		Matcher:     matcher,
		Languages:   langs,
		Sources:     raw.Sources,
		Sinks:       raw.Sinks,
		SourceFile:  sourceFile,
	}, nil
}

func compileLanguages(names []string) (map[ir.FileType]bool, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make(map[ir.FileType]bool, len(names))
	for _, n := range names {
		ft, ok := languageNames[strings.ToLower(n)]
		if !ok {
			return nil, fmt.Errorf("unknown language %q", n)
		}
		out[ft] = true
	}
	return out, nil
}

// compileMatcher picks the matcher kind by which field group is populated,
// in the precedence order the teacher's YAML loader checks presence
// (graph/parser_yaml.go): taint, wasm, ast_pattern, ast_query, jsonpath,
// text_regex_multi, text_regex.
func compileMatcher(raw rawRule) (Matcher, error) {
	switch {
	case raw.Taint != nil:
		return compileTaintRule(raw.Taint)
	case raw.Wasm != "":
		return &RegoWasmMatcher{WasmPath: raw.Wasm, Entrypoint: raw.Entrypoint}, nil
	case raw.Pattern != "":
		mvs := make(map[string]MetavariableSpec, len(raw.Metavariables))
		for k, v := range raw.Metavariables {
			mvs[k] = MetavariableSpec{Kind: v.Kind, Value: v.Value}
		}
		return &AstPatternMatcher{NodeKind: raw.Pattern, Within: raw.Within, Metavariables: mvs}, nil
	case raw.AstKind != "":
		kindRe, err := CompileRegex(raw.AstKind)
		if err != nil {
			return nil, err
		}
		var valueRe *CompiledRegex
		if raw.AstValue != "" {
			valueRe, err = CompileRegex(raw.AstValue)
			if err != nil {
				return nil, err
			}
		}
		return &AstQueryMatcher{KindRe: kindRe, ValueRe: valueRe}, nil
	case raw.Path != "" && raw.ValueRegex != "":
		re, err := CompileRegex(raw.ValueRegex)
		if err != nil {
			return nil, err
		}
		return &JsonPathRegexMatcher{Path: raw.Path, Regex: re}, nil
	case raw.Path != "":
		return &JsonPathEqMatcher{Path: raw.Path, Value: raw.Value}, nil
	case len(raw.Allow) > 0 || raw.Deny != "" || len(raw.Inside) > 0 || len(raw.NotInside) > 0:
		return compileTextRegexMulti(raw.Allow, raw.Deny, raw.Inside, raw.NotInside)
	case raw.Regex != "":
		re, err := CompileRegex(raw.Regex)
		if err != nil {
			return nil, err
		}
		return &TextRegexMatcher{Regex: re, Scope: raw.Scope}, nil
	default:
		return nil, &UnknownMatcherError{RuleID: raw.ID}
	}
}

func compileTextRegexMulti(allow []string, deny string, inside, notInside []string) (*TextRegexMultiMatcher, error) {
	m := &TextRegexMultiMatcher{}
	var err error
	if m.Allow, err = compileRegexList(allow); err != nil {
		return nil, err
	}
	if deny != "" {
		if m.Deny, err = CompileRegex(deny); err != nil {
			return nil, err
		}
	}
	if m.Inside, err = compileRegexList(inside); err != nil {
		return nil, err
	}
	if m.NotInside, err = compileRegexList(notInside); err != nil {
		return nil, err
	}
	return m, nil
}

func compileRegexList(patterns []string) ([]*CompiledRegex, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	out := make([]*CompiledRegex, 0, len(patterns))
	for _, p := range patterns {
		re, err := CompileRegex(p)
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, nil
}

func compileTaintRule(raw *rawTaint) (*TaintRuleMatcher, error) {
	sources, err := compileTaintPatterns(raw.Sources)
	if err != nil {
		return nil, err
	}
	sanitizers, err := compileTaintPatterns(raw.Sanitizers)
	if err != nil {
		return nil, err
	}
	reclass, err := compileTaintPatterns(raw.Reclass)
	if err != nil {
		return nil, err
	}
	sinks, err := compileTaintPatterns(raw.Sinks)
	if err != nil {
		return nil, err
	}
	return &TaintRuleMatcher{Sources: sources, Sanitizers: sanitizers, Reclass: reclass, Sinks: sinks}, nil
}

func compileTaintPatterns(raws []rawTaintPattern) ([]TaintPattern, error) {
	out := make([]TaintPattern, 0, len(raws))
	for _, r := range raws {
		tp := TaintPattern{Focus: r.Focus}
		var err error
		if tp.Allow, err = compileRegexList(r.Allow); err != nil {
			return nil, err
		}
		if r.Deny != "" {
			if tp.Deny, err = CompileRegex(r.Deny); err != nil {
				return nil, err
			}
		}
		if tp.Inside, err = compileRegexList(r.Inside); err != nil {
			return nil, err
		}
		if tp.NotInside, err = compileRegexList(r.NotInside); err != nil {
			return nil, err
		}
		out = append(out, tp)
	}
	return out, nil
}
