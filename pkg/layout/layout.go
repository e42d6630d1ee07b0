package layout

// Layout is the geometry computed for one node by a layout pass.
type Layout struct {
	// Rect is the border box: the slot the parent allocated to the node
	// with margin already taken out. Hit testing and damage use it.
	Rect Rect

	// ContentRect is Rect shrunk by the node's padding. Children land
	// inside it.
	ContentRect Rect
}
