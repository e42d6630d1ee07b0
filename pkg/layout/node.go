package layout

// MeasureFunc reports the intrinsic content size of a leaf given the space
// it could at most occupy. The engine consults it only when a styled
// dimension is Auto, so a node with explicit width and height never
// measures.
type MeasureFunc func(max Size) Size

// Node is the tree element the layout engine operates on. Style and
// Children are plain fields; mutate them through SetStyle, AddChild, and
// RemoveChild so the dirty flag propagates, or call MarkDirty by hand after
// editing them directly.
type Node struct {
	Style    Style
	Children []*Node

	// MeasureContent supplies the intrinsic content size for leaves whose
	// style leaves a dimension Auto. Nil measures as zero.
	MeasureContent MeasureFunc

	// Layout holds the result of the last calculation that visited this
	// node.
	Layout Layout

	handle Handle
	dirty  bool
	parent *Node
}

var _ Layoutable = (*Node)(nil)

// NewNode returns a node with the given style. New nodes start dirty so the
// first pass always computes them.
func NewNode(style Style) *Node {
	return &Node{Style: style, handle: NewHandle(), dirty: true}
}

// AddChild appends children and flags the path for recalculation.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		child.parent = n
		n.Children = append(n.Children, child)
	}
	n.MarkDirty()
}

// RemoveChild detaches child, filling its slot with the last child rather
// than shifting the tail. Reports whether child was present.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c != child {
			continue
		}
		last := len(n.Children) - 1
		n.Children[i] = n.Children[last]
		n.Children = n.Children[:last]
		child.parent = nil
		n.MarkDirty()
		return true
	}
	return false
}

// SetStyle replaces the node's style and flags it for recalculation.
func (n *Node) SetStyle(style Style) {
	n.Style = style
	n.MarkDirty()
}

// SetMeasure replaces the measurement callback and flags the node, since a
// new callback can report a different intrinsic size.
func (n *Node) SetMeasure(f MeasureFunc) {
	n.MeasureContent = f
	n.MarkDirty()
}

// MarkDirty flags the node and its ancestor path. The walk stops at the
// first node already flagged, whose path above is flagged too.
func (n *Node) MarkDirty() {
	node := n
	for node != nil && !node.dirty {
		node.dirty = true
		node = node.parent
	}
}

// The Layoutable implementation. SetDirty is the engine's half of the dirty
// protocol: it clears a single flag without touching ancestors, leaving
// MarkDirty as the only way to invalidate.

func (n *Node) LayoutHandle() Handle { return n.handle }
func (n *Node) LayoutStyle() Style   { return n.Style }

func (n *Node) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.Children))
	for i, child := range n.Children {
		out[i] = child
	}
	return out
}

func (n *Node) Measure(max Size) Size {
	if n.MeasureContent == nil {
		return Size{}
	}
	return n.MeasureContent(max)
}

func (n *Node) SetLayout(l Layout) { n.Layout = l }
func (n *Node) GetLayout() Layout  { return n.Layout }
func (n *Node) IsDirty() bool      { return n.dirty }
func (n *Node) SetDirty(d bool)    { n.dirty = d }
