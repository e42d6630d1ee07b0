package layout

// Constraint post-processes computed layout rects. After the core pass the
// engine runs Validate on every node; when it reports false, Apply produces
// a replacement rect that is stored as the node's layout (content rect
// re-derived from the node's padding). Constraints run in registration
// order, each seeing the previous one's output.
//
// Validate must be a pure predicate. A panic in Apply propagates to the
// Calculate caller; constraints correct geometry, they do not handle errors.
type Constraint interface {
	// Validate reports whether the computed rect is acceptable for the node.
	Validate(node Layoutable, rect Rect) bool

	// Apply returns the corrected rect. Called only when Validate reported
	// false for the same node and rect.
	Apply(node Layoutable, rect Rect) Rect
}

// MinSize is a Constraint enforcing a floor on every node's dimensions,
// regardless of style. Renderers targeting coarse pointers use it to keep
// interactive regions reachable.
type MinSize struct {
	Width, Height int
}

// Validate reports whether the rect meets the minimum dimensions.
func (c MinSize) Validate(_ Layoutable, rect Rect) bool {
	return rect.Width >= c.Width && rect.Height >= c.Height
}

// Apply grows the rect in place to the minimum dimensions.
func (c MinSize) Apply(_ Layoutable, rect Rect) Rect {
	if rect.Width < c.Width {
		rect.Width = c.Width
	}
	if rect.Height < c.Height {
		rect.Height = c.Height
	}
	return rect
}
