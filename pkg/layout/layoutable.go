package layout

// Layoutable is the interface for anything that can participate in layout
// calculation. The layout engine works entirely with this interface, enabling
// custom implementations.
type Layoutable interface {
	// LayoutHandle returns the node's stable opaque identity. The engine
	// keys its result cache on it, so the handle must not change over the
	// node's lifetime and must never be shared between nodes.
	LayoutHandle() Handle

	// LayoutStyle returns the style the layout pass reads for this node.
	LayoutStyle() Style

	// LayoutChildren returns the node's children in layout order.
	LayoutChildren() []Layoutable

	// Measure returns the intrinsic content size of this element given a
	// maximum available size. Leaf elements (like text) return the size
	// needed to display their content; pure containers return the zero Size.
	// The engine uses this as the base size for Auto-sized elements.
	Measure(max Size) Size

	// SetLayout stores a freshly computed layout on the node.
	SetLayout(Layout)

	// GetLayout returns the layout stored by the most recent pass.
	GetLayout() Layout

	// IsDirty reports whether layout beneath this node may have changed
	// since the last pass.
	IsDirty() bool

	// SetDirty overwrites the dirty flag without propagation. The engine
	// calls it with false once a node has been recomputed.
	SetDirty(dirty bool)
}
