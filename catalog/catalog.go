// Package catalog holds the process-wide, per-language sets of known
// sources, sinks and sanitizers consulted while building the DFG
// (parser.ExtractStatements, §4.2.5); TaintRule matchers do not read it and
// use only their own patterns (§4.8). It is lazily
// initialized, read-mostly, and exclusively write-locked during Extend —
// the same lifecycle the teacher documents for its stdlib/framework
// registries (graph/callgraph/patterns, graph/callgraph/core/stdlib_types.go).
package catalog

import (
	"strings"
	"sync"

	"github.com/latticesec/scanner/ir"
)

// Entry names one known symbol and its classification.
type Entry struct {
	Name string
	Kind ir.SymbolKind
}

// LanguageSet is the catalog for a single language.
type LanguageSet struct {
	Sources    map[string]bool
	Sinks      map[string]bool
	Sanitizers map[string]bool
}

func newLanguageSet() *LanguageSet {
	return &LanguageSet{
		Sources:    make(map[string]bool),
		Sinks:      make(map[string]bool),
		Sanitizers: make(map[string]bool),
	}
}

// Catalog is the process-wide registry of per-language source/sink/sanitizer
// sets. The zero value is not usable; construct with New or use Default.
type Catalog struct {
	mu   sync.RWMutex
	sets map[ir.FileType]*LanguageSet
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{sets: make(map[ir.FileType]*LanguageSet)}
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the lazily-initialized, process-wide catalog seeded with
// the built-in per-language entries (catalog/builtin.go).
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCat = New()
		seedBuiltins(defaultCat)
	})
	return defaultCat
}

// Extend adds entries for a language, taking the write lock. Safe to call
// concurrently with lookups; extension is the only concurrent writer.
func (c *Catalog) Extend(lang ir.FileType, entries []Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	set, ok := c.sets[lang]
	if !ok {
		set = newLanguageSet()
		c.sets[lang] = set
	}
	for _, e := range entries {
		switch e.Kind {
		case ir.SymbolSource:
			set.Sources[e.Name] = true
		case ir.SymbolSink:
			set.Sinks[e.Name] = true
		case ir.SymbolSanitizer:
			set.Sanitizers[e.Name] = true
		}
	}
}

// Classify returns the catalog classification for name in lang, resolving
// through a "macro::name" style qualifier the same way a direct call would
// (§4.2.5). ok is false when name is not a known source/sink/sanitizer.
func (c *Catalog) Classify(lang ir.FileType, name string) (ir.SymbolKind, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.sets[lang]
	if !ok {
		return "", false
	}
	bare := name
	if idx := strings.LastIndex(name, "::"); idx >= 0 {
		bare = name[idx+2:]
	}
	for _, candidate := range []string{name, bare} {
		if set.Sanitizers[candidate] {
			return ir.SymbolSanitizer, true
		}
		if set.Sinks[candidate] {
			return ir.SymbolSink, true
		}
		if set.Sources[candidate] {
			return ir.SymbolSource, true
		}
	}
	return "", false
}

// IsSanitizer is a convenience wrapper around Classify.
func (c *Catalog) IsSanitizer(lang ir.FileType, name string) bool {
	k, ok := c.Classify(lang, name)
	return ok && k == ir.SymbolSanitizer
}
