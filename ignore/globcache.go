package ignore

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultGlobCacheCapacity is the "small LRU" the spec describes for
// compiled glob translations (§4.10 "Path-regex cache").
const defaultGlobCacheCapacity = 256

// GlobCache translates include/exclude glob patterns to compiled regexes,
// caching the translation since the same globs are re-applied to every
// discovered path.
type GlobCache struct {
	lru *lru.Cache[string, *regexp.Regexp]
}

// NewGlobCache returns a glob-to-regex cache with the default small
// capacity.
func NewGlobCache() *GlobCache {
	c, _ := lru.New[string, *regexp.Regexp](defaultGlobCacheCapacity)
	return &GlobCache{lru: c}
}

// Compile translates and caches glob's regex form: `**` matches any path
// depth, `*` matches within one path segment (§6).
func (c *GlobCache) Compile(glob string) (*regexp.Regexp, error) {
	if re, ok := c.lru.Get(glob); ok {
		return re, nil
	}
	re, err := regexp.Compile(globToRegex(glob))
	if err != nil {
		return nil, err
	}
	c.lru.Add(glob, re)
	return re, nil
}

// globToRegex converts a glob pattern into an anchored regular expression.
func globToRegex(glob string) string {
	var b strings.Builder
	b.WriteString("^")
	runes := []rune(glob)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '*':
			if i+2 < len(runes) && runes[i+1] == '*' && runes[i+2] == '/' {
				// `**/` also matches zero directories.
				b.WriteString("(?:.*/)?")
				i += 2
				continue
			}
			if i+1 < len(runes) && runes[i+1] == '*' {
				b.WriteString(".*")
				i++
				continue
			}
			b.WriteString("[^/]*")
		case '?':
			b.WriteString("[^/]")
		case '.', '+', '(', ')', '|', '^', '$', '[', ']', '{', '}', '\\':
			b.WriteString("\\")
			b.WriteRune(runes[i])
		default:
			b.WriteRune(runes[i])
		}
	}
	b.WriteString("$")
	return b.String()
}
