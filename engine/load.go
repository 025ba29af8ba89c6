package engine

import "github.com/latticesec/scanner/rules"

// LoadRules compiles a rule set via rules.LoadAll and emits a RuleCompiled
// debug event per rule (§6 "RuleCompiled"). Loading itself has no Engine to
// attach a run id to yet, so these events carry an empty RunID.
func LoadRules(sources map[string][]byte) ([]*rules.CompiledRule, error) {
	compiled, err := rules.LoadAll(sources)
	if err != nil {
		return nil, err
	}
	for _, r := range compiled {
		emit(RuleCompiled{ID: r.ID})
	}
	return compiled, nil
}
