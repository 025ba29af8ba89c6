package engine

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ruleCacheKey is the (file_path, rule_id) composite key (§4.10).
type ruleCacheKey struct {
	FilePath string
	RuleID   string
}

// RuleCache is the in-memory LRU cache of per-(file,rule) findings backed
// by hashicorp/golang-lru/v2, with lock-free hit/miss counters (§4.10,
// §5 "RuleCache: protected by two reader-writer locks" — the library owns
// that locking internally, this wrapper only adds the stats layer).
type RuleCache struct {
	lru          *lru.Cache[ruleCacheKey, []Finding]
	hits, misses atomic.Int64
}

// NewRuleCache returns a RuleCache with the given capacity (§4.10).
func NewRuleCache(capacity int) *RuleCache {
	c, err := lru.New[ruleCacheKey, []Finding](capacity)
	if err != nil {
		// capacity<=0 isn't meaningful for this cache; fall back to a
		// single-entry cache rather than propagating a config error here.
		c, _ = lru.New[ruleCacheKey, []Finding](1)
	}
	return &RuleCache{lru: c}
}

// GetOrInsert returns the cached findings for (filePath, ruleID), computing
// and inserting them via compute on a miss (§4.10 get_or_insert).
func (c *RuleCache) GetOrInsert(filePath, ruleID string, compute func() []Finding) ([]Finding, bool) {
	key := ruleCacheKey{FilePath: filePath, RuleID: ruleID}
	if v, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		return v, true
	}
	c.misses.Add(1)
	v := compute()
	c.lru.Add(key, v)
	return v, false
}

// Reset clears all entries; stats counters are left untouched.
func (c *RuleCache) Reset() {
	c.lru.Purge()
}

// Stats returns the cumulative hit/miss counts.
func (c *RuleCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
