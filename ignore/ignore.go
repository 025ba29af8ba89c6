// Package ignore compiles `.gitignore`/`.sastignore`-style patterns and
// include/exclude globs into regexes, grounded on sabhiram/go-gitignore for
// the ignore-file dialect (§6 "Ignore files"). Directory walking itself is
// an external collaborator's job (§1 Out of scope); this package only
// answers "does this path match."
package ignore

import (
	gitignore "github.com/sabhiram/go-gitignore"
)

// Matcher answers ignore-file membership queries for one compiled pattern
// set.
type Matcher struct {
	gi *gitignore.GitIgnore
}

// Compile builds a Matcher from ignore-file lines (as read from
// `.gitignore`/`.sastignore`).
func Compile(lines []string) *Matcher {
	return &Matcher{gi: gitignore.CompileIgnoreLines(lines...)}
}

// Matches reports whether path is ignored.
func (m *Matcher) Matches(path string) bool {
	if m == nil || m.gi == nil {
		return false
	}
	return m.gi.MatchesPath(path)
}
