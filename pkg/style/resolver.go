package style

import (
	"sync"
	"sync/atomic"
)

// Resolver owns the loaded sheets, the cascade cache, and the collected
// diagnostics. It is safe for concurrent use: many goroutines may resolve at
// once while sheets load from another.
type Resolver struct {
	mu      sync.RWMutex
	sheets  []*Sheet
	version atomic.Uint64

	cache *CascadeCache

	diagMu sync.Mutex
	diags  []Diagnostic
}

// NewResolver returns a Resolver with no sheets loaded and an empty cache.
func NewResolver() *Resolver {
	return &Resolver{cache: NewCascadeCache()}
}

// LoadSheet appends a sheet after the ones already loaded and bumps the theme
// version, invalidating every cached resolution. The sheet must not be
// mutated after loading.
func (r *Resolver) LoadSheet(s *Sheet) {
	r.mu.Lock()
	r.sheets = append(r.sheets, s)
	r.mu.Unlock()
	r.version.Add(1)
	r.cache.Invalidate()
}

// ClearSheets drops every loaded sheet and bumps the theme version.
func (r *Resolver) ClearSheets() {
	r.mu.Lock()
	r.sheets = nil
	r.mu.Unlock()
	r.version.Add(1)
	r.cache.Invalidate()
}

// ThemeVersion returns the current theme version. It advances by one on every
// sheet load or clear; a changed version means every previously resolved
// style is stale.
func (r *Resolver) ThemeVersion() uint64 {
	return r.version.Load()
}

// CacheSize returns the number of live cache entries, for diagnostics.
func (r *Resolver) CacheSize() int {
	return r.cache.Len()
}

// Resolve cascades every matching block for the component under the active
// states and returns the resulting style. Repeated calls with an unchanged
// theme return the same pointer. Resolve never fails: bad declarations are
// skipped and recorded as diagnostics.
func (r *Resolver) Resolve(component string, states StateSet) *ResolvedStyle {
	version := r.version.Load()
	key := cacheKey{component: component, states: states.Canonical(), version: version}
	if rs, ok := r.cache.lookup(key); ok {
		return rs
	}
	rs := r.resolveUncached(component, states)
	return r.cache.store(key, rs)
}

// resolveUncached runs the cascade: sheets in load order, rules in sheet
// order, blocks in declaration order. Each matching block overwrites the
// accumulator property by property, so a later block that sets only one
// property leaves the rest of an earlier block's work intact.
func (r *Resolver) resolveUncached(component string, states StateSet) *ResolvedStyle {
	r.mu.RLock()
	sheets := r.sheets
	r.mu.RUnlock()

	props := make(map[string]Value)
	for _, sheet := range sheets {
		for _, rule := range sheet.Rules {
			if rule.Component != component {
				continue
			}
			for _, block := range rule.Blocks {
				if !block.Matches(states) {
					continue
				}
				for _, decl := range block.Declarations {
					if reason := checkValue(decl.Property, decl.Value); reason != "" {
						r.recordDiag(Diagnostic{Component: component, Property: decl.Property, Detail: reason})
						continue
					}
					props[decl.Property] = decl.Value
				}
			}
		}
	}
	return newResolvedStyle(props)
}

// Diagnostics returns a copy of the problems collected so far.
func (r *Resolver) Diagnostics() []Diagnostic {
	r.diagMu.Lock()
	defer r.diagMu.Unlock()
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// ClearDiagnostics drops the collected problems.
func (r *Resolver) ClearDiagnostics() {
	r.diagMu.Lock()
	r.diags = nil
	r.diagMu.Unlock()
}

func (r *Resolver) recordDiag(d Diagnostic) {
	r.diagMu.Lock()
	r.diags = append(r.diags, d)
	r.diagMu.Unlock()
}
