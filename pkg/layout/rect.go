package layout

// Rect is an axis-aligned rectangle in cell coordinates. X and Y locate
// the top-left corner; Width and Height extend right and down.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect builds a Rect from a position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty reports whether the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, y) lies inside the rect. The top
// and left edges are inclusive, the right and bottom exclusive, so adjacent
// rects never claim the same cell.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.Width && y < r.Y+r.Height
}

// Inset shrinks the rect by the given edges. Negative edge values grow it.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  r.Width - edges.Horizontal(),
		Height: r.Height - edges.Vertical(),
	}
}

// Translate moves the rect by (dx, dy) without changing its size.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersect returns the overlapping region of two rects, or the zero Rect
// when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersects reports whether the two rects share at least one cell.
// Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Union returns the smallest rect covering both inputs. An empty input
// contributes nothing, so unioning damage rects never inflates the region
// toward the origin.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Size is a width/height pair in cells.
type Size struct {
	Width, Height int
}
