package layout

import (
	"sync"

	"github.com/saren071/ornata-public-sub003/internal/debug"
	"github.com/saren071/ornata-public-sub003/pkg/backend"
)

// Engine is a layout calculator with a result cache. Where the package-level
// [Calculate] recomputes on every call, an Engine remembers the last result
// per root: repeated calls with the same root handle, bounds, and backend on
// a clean tree return the identical *Layout pointer without touching the
// tree. Callers can therefore use pointer comparison to detect "layout
// unchanged since last frame".
//
// An Engine is safe for concurrent use, but layout itself mutates the node
// tree, so two goroutines must not Calculate over the same tree at once.
type Engine struct {
	mu          sync.Mutex
	entries     map[Handle]engineEntry
	constraints []Constraint
	stats       Stats
}

// engineEntry is one cached root result.
type engineEntry struct {
	bounds  Rect
	backend backend.ID
	result  *Layout
}

// Stats describes the engine's accumulated work, for diagnostics.
type Stats struct {
	Entries    int  // cached root results currently held
	Hits       int  // Calculate calls answered from cache
	Misses     int  // Calculate calls that ran a layout pass
	Recomputed int  // nodes recomputed across all passes
	Violations int  // impossible min/max pairs resolved by clamping
	Damage     Rect // union of every rect change since the last reset
}

// NewEngine creates an empty layout engine.
func NewEngine() *Engine {
	return &Engine{entries: make(map[Handle]engineEntry)}
}

// AddConstraint registers a post-layout constraint. All cached results are
// dropped, since they were computed without it.
func (e *Engine) AddConstraint(c Constraint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.constraints = append(e.constraints, c)
	clear(e.entries)
}

// Calculate lays out the tree rooted at root within bounds for the given
// backend, returning the root's computed layout. Results are cached per root
// handle: a clean tree with unchanged bounds and backend returns the same
// pointer as the previous call. Any other combination runs a layout pass
// over the dirty parts of the tree and stores a fresh result.
func (e *Engine) Calculate(root Layoutable, bounds Rect, id backend.ID) *Layout {
	if root == nil {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	h := root.LayoutHandle()
	if entry, ok := e.entries[h]; ok &&
		entry.bounds == bounds && entry.backend == id && !root.IsDirty() {
		e.stats.Hits++
		return entry.result
	}
	e.stats.Misses++

	var pass calcPass
	style := root.LayoutStyle()
	width := style.Width.Resolve(bounds.Width, bounds.Width)
	height := style.Height.Resolve(bounds.Height, bounds.Height)
	available := NewRect(bounds.X, bounds.Y, width, height)
	containing := computeBorderBox(style, available, &pass)
	calculateNode(root, available, containing, false, &pass)

	e.applyConstraints(root, &pass)

	e.stats.Recomputed += pass.computed
	e.stats.Violations += pass.violations
	e.stats.Damage = e.stats.Damage.Union(pass.damage)

	result := new(Layout)
	*result = root.GetLayout()
	e.entries[h] = engineEntry{bounds: bounds, backend: id, result: result}

	debug.Log("layout pass",
		"backend", string(id),
		"nodes", pass.computed,
		"violations", pass.violations)
	return result
}

// applyConstraints runs the registered constraints over every laid-out node.
// Caller must hold e.mu.
func (e *Engine) applyConstraints(root Layoutable, pass *calcPass) {
	if len(e.constraints) == 0 {
		return
	}
	walk(root, func(node Layoutable) {
		layout := node.GetLayout()
		rect := layout.Rect
		for _, c := range e.constraints {
			if c.Validate(node, rect) {
				continue
			}
			adjusted := c.Apply(node, rect)
			pass.noteDamage(rect, adjusted)
			rect = adjusted
		}
		if rect != layout.Rect {
			node.SetLayout(Layout{
				Rect:        rect,
				ContentRect: rect.Inset(node.LayoutStyle().Padding),
			})
		}
	})
}

// walk visits node and all descendants depth-first.
func walk(node Layoutable, fn func(Layoutable)) {
	fn(node)
	for _, child := range node.LayoutChildren() {
		walk(child, fn)
	}
}

// Invalidate drops the cached result for a root handle. Harmless when no
// entry exists. Trees themselves are invalidated by marking nodes dirty;
// Invalidate is for discarding a root the engine will never see again.
func (e *Engine) Invalidate(h Handle) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.entries[h]; ok {
		delete(e.entries, h)
		debug.Log("layout cache invalidated", "handle", uint64(h))
	}
}

// Stats returns a snapshot of the engine's counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.stats
	s.Entries = len(e.entries)
	return s
}

// ResetDamage clears the accumulated damage region, typically after a
// renderer has repainted it.
func (e *Engine) ResetDamage() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stats.Damage = Rect{}
}
