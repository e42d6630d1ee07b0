package layout

import "sync/atomic"

// Handle is the opaque identity of a layout node. Handles are issued
// monotonically at node creation and never reused, so they are safe to use
// as cache keys where a memory address would not be (an address can be
// recycled after a node is freed; a handle cannot).
type Handle uint64

var handleCounter atomic.Uint64

// NewHandle issues a fresh handle. Node constructors call this; custom
// Layoutable implementations should acquire one handle per node at
// construction and return it unchanged for the node's lifetime.
func NewHandle() Handle {
	return Handle(handleCounter.Add(1))
}
