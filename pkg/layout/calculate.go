package layout

// Calculate lays out the tree rooted at root against a viewport of the
// given dimensions, filling in the Layout of every node it visits. Clean
// subtrees whose allocated space did not move are left untouched.
//
// For cached, backend-keyed layout use [Engine.Calculate].
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	if root == nil {
		return
	}
	var pass calcPass
	calculateRoot(root, availableWidth, availableHeight, &pass)
}

// calcPass accumulates bookkeeping for one calculation: how many nodes were
// recomputed, how many impossible min/max pairs were clamped, and the damage
// region (union of every rect that changed). The engine folds it into its
// stats; one-shot Calculate discards it.
type calcPass struct {
	computed   int
	violations int
	damage     Rect
}

func (p *calcPass) noteDamage(oldRect, newRect Rect) {
	if oldRect == newRect {
		return
	}
	p.damage = p.damage.Union(oldRect).Union(newRect)
}

// calculateRoot resolves the root's own size against the viewport and
// starts the recursion. The root doubles as the containing rect for
// absolute descendants that find no positioned ancestor.
func calculateRoot(root Layoutable, availableWidth, availableHeight int, pass *calcPass) {
	style := root.LayoutStyle()
	avail := NewRect(0, 0,
		style.Width.Resolve(availableWidth, availableWidth),
		style.Height.Resolve(availableHeight, availableHeight))
	calculateNode(root, avail, computeBorderBox(style, avail, pass), false, pass)
}

// calculateNode computes the layout of one node. available is the border
// box slot the parent allocated, with the node's margin already taken out;
// containing is the border box of the nearest positioned ancestor, which
// absolute descendants place against. force overrides the clean-subtree
// skip when an ancestor's containing rect moved.
func calculateNode(node Layoutable, available Rect, containing Rect, force bool, pass *calcPass) {
	style := node.LayoutStyle()

	borderBox := computeBorderBox(style, available, pass)

	// Relative nodes flow normally, then shift by their insets.
	if style.Position == PositionRelative {
		dx, dy := relativeOffset(style, available)
		borderBox = borderBox.Translate(dx, dy)
	}

	// A clean node in an unchanged slot has an unchanged subtree: any style
	// edit below would have flagged the path to here, so every derived rect
	// comes out the same as last time.
	prev := node.GetLayout()
	if !force && !node.IsDirty() && borderBox == prev.Rect {
		return
	}

	contentRect := borderBox.Inset(style.Padding)

	// Positioned nodes start a new containing rect for absolute descendants.
	childContaining := containing
	childForce := force
	if style.Position != PositionStatic {
		childContaining = borderBox
		if borderBox != prev.Rect {
			// The anchor moved; absolute descendants deep in clean
			// subtrees must re-place against it.
			childForce = true
		}
	}

	if len(node.LayoutChildren()) > 0 {
		layoutChildren(node, contentRect, childContaining, childForce, pass)
	}

	node.SetLayout(Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	})
	node.SetDirty(false)
	pass.computed++
	pass.noteDamage(prev.Rect, borderBox)
}

// computeBorderBox sizes a node's border box within the space the parent
// allocated. For flex children the available rect already carries the
// flex-computed main size, so only the min/max clamp happens here; the
// explicit Width and Height were consumed by the pass that produced the
// slot.
func computeBorderBox(style Style, available Rect, pass *calcPass) Rect {
	return Rect{
		X:      available.X,
		Y:      available.Y,
		Width:  clampAxis(available.Width, style.MinWidth, style.MaxWidth, pass),
		Height: clampAxis(available.Height, style.MinHeight, style.MaxHeight, pass),
	}
}

// clampAxis applies one axis's min/max pair to an allocated size. A pair
// whose explicit maximum sits below its minimum is recorded as a violation;
// clamp then lets the minimum win. Sizes never go negative.
func clampAxis(size int, minV, maxV Value, pass *calcPass) int {
	lo := minV.Resolve(size, 0)
	hi := maxV.Resolve(size, size)
	if !maxV.IsAuto() && hi < lo {
		pass.violations++
	}
	out := clamp(size, lo, hi)
	if out < 0 {
		return 0
	}
	return out
}

// relativeOffset resolves a relative node's inset offsets. Left/Top win over
// Right/Bottom when both edges are set.
func relativeOffset(style Style, available Rect) (dx, dy int) {
	switch {
	case !style.Left.IsAuto():
		dx = style.Left.Resolve(available.Width, 0)
	case !style.Right.IsAuto():
		dx = -style.Right.Resolve(available.Width, 0)
	}
	switch {
	case !style.Top.IsAuto():
		dy = style.Top.Resolve(available.Height, 0)
	case !style.Bottom.IsAuto():
		dy = -style.Bottom.Resolve(available.Height, 0)
	}
	return dx, dy
}

// clamp bounds v below by lo and above by hi. An impossible pair, lo above
// hi, drops the ceiling so the floor always holds.
func clamp(v, lo, hi int) int {
	if hi >= lo && v > hi {
		v = hi
	}
	if v < lo {
		return lo
	}
	return v
}
