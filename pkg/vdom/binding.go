package vdom

import (
	"slices"
	"sync"

	"github.com/saren071/ornata-public-sub003/pkg/backend"
	"github.com/saren071/ornata-public-sub003/pkg/layout"
)

// BindFunc observes a binding change on a Registry.
type BindFunc func(id backend.ID, key Key, handle layout.Handle)

// bindingKey scopes a node key to one backend.
type bindingKey struct {
	backend backend.ID
	key     Key
}

// Registry maps (backend, key) pairs to host object handles. Renderer
// adapters register a binding when they realize a node and unregister it
// when a removal patch retires the key; nothing is reclaimed automatically.
//
// Callbacks run outside the registry lock, so they may re-enter the
// registry: a bind callback can unregister, and vice versa. Callbacks fire
// in registration order.
type Registry struct {
	mu       sync.Mutex
	entries  map[bindingKey]layout.Handle
	onBind   []BindFunc
	onUnbind []BindFunc
}

// NewRegistry creates an empty binding registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[bindingKey]layout.Handle)}
}

// OnBind adds a callback invoked after every Register.
func (r *Registry) OnBind(fn BindFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onBind = append(r.onBind, fn)
}

// OnUnbind adds a callback invoked after every successful Unregister.
func (r *Registry) OnUnbind(fn BindFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onUnbind = append(r.onUnbind, fn)
}

// Register binds key on the given backend to a host handle, replacing any
// previous binding for the pair.
func (r *Registry) Register(id backend.ID, key Key, handle layout.Handle) {
	r.mu.Lock()
	r.entries[bindingKey{backend: id, key: key}] = handle
	callbacks := slices.Clone(r.onBind)
	r.mu.Unlock()

	for _, fn := range callbacks {
		fn(id, key, handle)
	}
}

// Unregister drops the binding for key on the given backend, reporting
// whether one existed.
func (r *Registry) Unregister(id backend.ID, key Key) bool {
	bk := bindingKey{backend: id, key: key}
	r.mu.Lock()
	handle, ok := r.entries[bk]
	if ok {
		delete(r.entries, bk)
	}
	callbacks := slices.Clone(r.onUnbind)
	r.mu.Unlock()

	if !ok {
		return false
	}
	for _, fn := range callbacks {
		fn(id, key, handle)
	}
	return true
}

// Lookup returns the handle bound to key on the given backend.
func (r *Registry) Lookup(id backend.ID, key Key) (layout.Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	handle, ok := r.entries[bindingKey{backend: id, key: key}]
	return handle, ok
}

// Len returns the number of live bindings across all backends.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
