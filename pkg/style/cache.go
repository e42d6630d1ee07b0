package style

import "sync"

// cacheKey identifies one cached resolution. The theme version is part of the
// key so that entries written by a resolver racing a sheet load can never be
// served after the load.
type cacheKey struct {
	component string
	states    string
	version   uint64
}

// CascadeCache stores resolved styles keyed by component, canonical state
// set, and theme version. A hit returns the same pointer every time, which
// lets downstream stages skip work by identity comparison. The cache is an
// explicit value owned by its resolver; independent resolvers never share
// entries.
type CascadeCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*ResolvedStyle
}

// NewCascadeCache returns an empty cache.
func NewCascadeCache() *CascadeCache {
	return &CascadeCache{entries: make(map[cacheKey]*ResolvedStyle)}
}

// lookup returns the cached style for key, if present.
func (c *CascadeCache) lookup(key cacheKey) (*ResolvedStyle, bool) {
	c.mu.RLock()
	rs, ok := c.entries[key]
	c.mu.RUnlock()
	return rs, ok
}

// store caches rs under key and returns the entry that won. When two
// goroutines race to resolve the same query, the first stored pointer wins so
// later callers keep seeing one identity.
func (c *CascadeCache) store(key cacheKey, rs *ResolvedStyle) *ResolvedStyle {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing
	}
	c.entries[key] = rs
	return rs
}

// Invalidate drops every entry in O(1) by swapping in a fresh map. Entries
// written afterward by in-flight resolutions carry the old version in their
// key and are unreachable.
func (c *CascadeCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[cacheKey]*ResolvedStyle)
	c.mu.Unlock()
}

// Len returns the number of live entries.
func (c *CascadeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
