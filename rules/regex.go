package rules

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// RegexDialect tags which engine compiled a pattern. Stored on CompiledRegex
// so dispatch at match-time is O(1), no re-probing (§4.3, §9).
type RegexDialect string

const (
	DialectStandard RegexDialect = "standard" // Go's RE2-based regexp
	DialectFancy    RegexDialect = "fancy"    // regexp2: backreferences, lookaround
	// DialectPCRE2 falls back to the fancy engine: the retrieval pack carries
	// no cgo PCRE2 binding, and regexp2's backtracking engine covers the
	// PCRE2 features (backreferences, lookaround) the spec's fallback tier
	// exists for (documented in DESIGN.md).
	DialectPCRE2 RegexDialect = "pcre2"
)

// Match is the engine-independent result of one regex match: a span plus
// capture-group getters, replacing the ambiguous source-side match APIs
// (§9 design note).
type Match struct {
	Start, End int
	Text       string
	groups     []string // index 0 is the whole match
}

// Group returns capture group n (0 = whole match), or "" if absent.
func (m Match) Group(n int) string {
	if n < 0 || n >= len(m.groups) {
		return ""
	}
	return m.groups[n]
}

// CompiledRegex is a tagged union over the three regex dialects, uniform
// behind IsMatch/FindAllMatches (§9).
type CompiledRegex struct {
	Dialect RegexDialect
	Source  string

	std   *regexp.Regexp
	fancy *regexp2.Regexp
}

// CompileRegex tries standard (RE2) first, then fancy (backtracking) —
// matching the fallback order named in §4.3 and confirmed against
// crates/loader/src/regex_types.rs in original_source/, which resolves the
// dialect once at load time and caches it on the compiled matcher.
func CompileRegex(pattern string) (*CompiledRegex, error) {
	if re, err := regexp.Compile(pattern); err == nil {
		return &CompiledRegex{Dialect: DialectStandard, Source: pattern, std: re}, nil
	}
	re2, err := regexp2.Compile(pattern, regexp2.RE2)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q in all dialects: %w", pattern, err)
	}
	return &CompiledRegex{Dialect: DialectFancy, Source: pattern, fancy: re2}, nil
}

// IsMatch reports whether s contains a match anywhere.
func (c *CompiledRegex) IsMatch(s string) bool {
	switch c.Dialect {
	case DialectStandard:
		return c.std.MatchString(s)
	default:
		ok, _ := c.fancy.MatchString(s)
		return ok
	}
}

// FindAllMatches returns every non-overlapping match in s, with capture
// groups populated.
func (c *CompiledRegex) FindAllMatches(s string) []Match {
	switch c.Dialect {
	case DialectStandard:
		return findAllStandard(c.std, s)
	default:
		return findAllFancy(c.fancy, s)
	}
}

func findAllStandard(re *regexp.Regexp, s string) []Match {
	idxs := re.FindAllStringSubmatchIndex(s, -1)
	out := make([]Match, 0, len(idxs))
	for _, idx := range idxs {
		groups := make([]string, len(idx)/2)
		for i := range groups {
			lo, hi := idx[2*i], idx[2*i+1]
			if lo < 0 || hi < 0 {
				continue
			}
			groups[i] = s[lo:hi]
		}
		out = append(out, Match{Start: idx[0], End: idx[1], Text: s[idx[0]:idx[1]], groups: groups})
	}
	return out
}

func findAllFancy(re *regexp2.Regexp, s string) []Match {
	var out []Match
	m, _ := re.FindStringMatch(s)
	for m != nil {
		groups := make([]string, 0, len(m.Groups()))
		for _, g := range m.Groups() {
			groups = append(groups, g.String())
		}
		out = append(out, Match{Start: m.Index, End: m.Index + m.Length, Text: m.String(), groups: groups})
		m, _ = re.FindNextMatch(m)
	}
	return out
}
