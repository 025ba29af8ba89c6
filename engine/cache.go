package engine

import (
	"encoding/json"
	"os"
	"sync"
)

// AnalysisCache persists Finding lists keyed by a FileIR's content hash
// (§4.10). Corrupt cache files are treated as empty — reanalysis is always
// safe, it is only slower.
type AnalysisCache struct {
	mu      sync.RWMutex
	path    string
	entries map[string][]Finding
	dirty   bool
}

// NewAnalysisCache loads path if it exists and parses cleanly, or starts
// empty (CacheCorrupt and IOError both degrade to an empty cache, per §7).
func NewAnalysisCache(path string) *AnalysisCache {
	c := &AnalysisCache{path: path, entries: make(map[string][]Finding)}
	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	var loaded map[string][]Finding
	if err := json.Unmarshal(data, &loaded); err != nil {
		return c
	}
	c.entries = loaded
	return c
}

// Get returns the cached findings for hash and whether they were present.
func (c *AnalysisCache) Get(hash string) ([]Finding, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.entries[hash]
	return f, ok
}

// Put inserts findings under hash. Called only from the scan coordinator
// between worker completions (§4.4, §5 "Shared resources"), never from a
// worker goroutine directly.
func (c *AnalysisCache) Put(hash string, findings []Finding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[hash] = findings
	c.dirty = true
}

// Flush persists the cache to its configured path if it has pending writes.
func (c *AnalysisCache) Flush() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.dirty || c.path == "" {
		return nil
	}
	data, err := json.Marshal(c.entries)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
