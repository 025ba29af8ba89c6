package rules

// This file mirrors the raw `rules: [...]` YAML document (§6 External
// Interfaces) before it is resolved into the typed CompiledRule/Matcher
// forms in loader.go. Field presence, not a discriminator tag, selects the
// matcher kind — grounded on the teacher's graph/parser_yaml.go approach of
// unmarshaling into a permissive intermediate struct first.

// rawRuleFile is the top-level document.
type rawRuleFile struct {
	Rules []rawRule `yaml:"rules"`
}

// rawRule is one entry under `rules:`. Exactly one matcher-shaped group of
// fields should be populated; loader.go decides which.
type rawRule struct {
	ID          string     `yaml:"id"`
	Severity    string     `yaml:"severity"`
	Category    string     `yaml:"category"`
	Message     string     `yaml:"message"`
	Remediation string     `yaml:"remediation"`
	Fix         string     `yaml:"fix"`
	Interfile   bool       `yaml:"interfile"`
	Languages   rawStrList `yaml:"languages"`

	// text_regex
	Regex string `yaml:"regex"`
	Scope string `yaml:"scope"`

	// text_regex_multi
	Allow     rawStrList `yaml:"allow"`
	Deny      string     `yaml:"deny"`
	Inside    rawStrList `yaml:"inside"`
	NotInside rawStrList `yaml:"not_inside"`

	// jsonpath_eq / jsonpath_regex
	Path       string      `yaml:"path"`
	Value      interface{} `yaml:"value"`
	ValueRegex string      `yaml:"value_regex"`

	// ast_query
	AstKind  string `yaml:"ast_kind"`
	AstValue string `yaml:"ast_value"`

	// ast_pattern
	Pattern       string                     `yaml:"pattern"`
	Within        string                     `yaml:"within"`
	Metavariables map[string]rawMetavariable `yaml:"metavariables"`

	// rego_wasm
	Wasm       string `yaml:"wasm"`
	Entrypoint string `yaml:"entrypoint"`

	// taint_rule
	Taint *rawTaint `yaml:"taint"`

	// catalog-driven taint shortcuts, copied to CompiledRule.Sources/Sinks.
	// No matcher reads them, and they do not select a matcher on their own.
	Sources rawStrList `yaml:"pattern-sources"`
	Sinks   rawStrList `yaml:"pattern-sinks"`
}

type rawMetavariable struct {
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

type rawTaint struct {
	Sources    []rawTaintPattern `yaml:"sources"`
	Sanitizers []rawTaintPattern `yaml:"sanitizers"`
	Reclass    []rawTaintPattern `yaml:"reclass"`
	Sinks      []rawTaintPattern `yaml:"sinks"`
}

type rawTaintPattern struct {
	Allow     rawStrList `yaml:"allow"`
	Deny      string     `yaml:"deny"`
	Inside    rawStrList `yaml:"inside"`
	NotInside rawStrList `yaml:"not_inside"`
	Focus     string     `yaml:"focus"`
}

// rawStrList unmarshals either a bare scalar or a YAML sequence into a
// []string, matching the "languages: python" vs "languages: [python, rust]"
// leniency the spec's external format allows (§6).
type rawStrList []string

func (l *rawStrList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var multi []string
	if err := unmarshal(&multi); err == nil {
		*l = multi
		return nil
	}
	var single string
	if err := unmarshal(&single); err != nil {
		return err
	}
	if single == "" {
		*l = nil
		return nil
	}
	*l = []string{single}
	return nil
}
