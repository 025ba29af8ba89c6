package engine

// Dedup removes Findings with duplicate IDs, preserving first-seen order
// (§3 "Lifecycle", §4.4 "Dedup").
func Dedup(findings []Finding) []Finding {
	seen := make(map[string]bool, len(findings))
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if seen[f.ID] {
			continue
		}
		seen[f.ID] = true
		out = append(out, f)
	}
	return out
}
