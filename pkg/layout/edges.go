package layout

// Edges holds one integer per side of a box. Margin and padding are both
// expressed as Edges.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll puts the same value on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric takes a vertical value for top/bottom and a horizontal
// value for left/right.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL takes the four sides in CSS order: top, right, bottom, left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal is the left and right values summed.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical is the top and bottom values summed.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}
