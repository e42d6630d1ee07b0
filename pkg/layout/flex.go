package layout

// flexItem holds intermediate calculation state for one in-flow child.
// Items live for a single layoutChildren call; nothing here is retained on
// nodes between passes.
type flexItem struct {
	node        Layoutable
	style       Style
	measured    Size // intrinsic content size, if an axis needed it
	mainContent int  // main-axis size excluding margin
	mainMargin  int  // margin sum on the main axis
	crossMargin int  // margin sum on the cross axis
	mainPos     int  // offset within the line, margin included
	crossPos    int  // offset within the line's cross extent
	crossOuter  int  // cross-axis slot size, margin included
	grow        float64
	shrink      float64
}

// outer returns the main-axis slot size, margin included.
func (it *flexItem) outer() int {
	return it.mainContent + it.mainMargin
}

// flexLine is one run of children sharing a cross-axis band. A container
// that wraps produces one line per run; a nowrap container produces exactly
// one line.
type flexLine struct {
	start, end int // items[start:end]
	extent     int // cross-axis size of the band
	pos        int // cross-axis offset of the band within the content rect
}

// layoutChildren arranges the children of a node within the given content
// rect. This implements the core flexbox algorithm: size, wrap into lines,
// flex within each line, justify along the main axis, align across, then
// recurse. Absolutely positioned children skip flow and place against the
// containing rect.
func layoutChildren(node Layoutable, contentRect Rect, containing Rect, force bool, pass *calcPass) {
	children := node.LayoutChildren()
	if len(children) == 0 {
		return
	}

	style := node.LayoutStyle()
	isRow := style.Direction == Row

	mainSize, crossSize := contentRect.Width, contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Absolute children bypass flow entirely.
	var flow []Layoutable
	for _, child := range children {
		if child.LayoutStyle().Position == PositionAbsolute {
			placeAbsolute(child, containing, force, pass)
			continue
		}
		flow = append(flow, child)
	}
	if len(flow) == 0 {
		return
	}

	// Phase 1: Compute hypothetical main sizes and flex factors.
	// A child's main size resolves as explicit dimension, else flex basis,
	// else measured intrinsic size, else zero; min/max clamp applies with
	// min winning. Margin counts toward the child's outer size.
	items := make([]flexItem, len(flow))
	budget := Size{Width: contentRect.Width, Height: contentRect.Height}
	for i, child := range flow {
		item := &items[i]
		item.node = child
		item.style = child.LayoutStyle()

		if isRow {
			item.mainMargin = item.style.Margin.Horizontal()
			item.crossMargin = item.style.Margin.Vertical()
		} else {
			item.mainMargin = item.style.Margin.Vertical()
			item.crossMargin = item.style.Margin.Horizontal()
		}

		if item.style.Width.IsAuto() || item.style.Height.IsAuto() {
			item.measured = child.Measure(budget)
		}

		item.mainContent = clampMain(item.style, hypotheticalMain(item, isRow, mainSize), isRow, mainSize)
		item.grow = item.style.FlexGrow
		item.shrink = item.style.FlexShrink
	}

	// Phase 2: Collect items into lines. With wrap enabled a new line starts
	// whenever the next child would exceed the remaining main-axis extent;
	// a line always takes at least one child.
	lines := collectLines(items, style, mainSize)

	for li := range lines {
		line := &lines[li]
		lineItems := items[line.start:line.end]

		// Phase 3: Distribute free space within the line.
		flexLineMain(lineItems, style, isRow, mainSize)

		// Phase 4: Position along the main axis (justify).
		free := lineFreeSpace(lineItems, style, mainSize)
		offset, spacing := justifyPlan(style.JustifyContent, free, len(lineItems))
		for i := range lineItems {
			lineItems[i].mainPos = offset
			offset += lineItems[i].outer() + style.Gap + spacing
		}
	}

	// Phase 5: Size the lines on the cross axis and align items within them.
	sizeLines(lines, items, isRow, crossSize)
	for li := range lines {
		line := &lines[li]
		for i := line.start; i < line.end; i++ {
			alignItem(&items[i], style, isRow, line.extent)
		}
	}

	// Phase 6: Convert to rects and recurse.
	for li := range lines {
		line := &lines[li]
		for i := line.start; i < line.end; i++ {
			item := &items[i]

			// The slot allocated to this child, margin included.
			var slot Rect
			if isRow {
				slot = Rect{
					X:      contentRect.X + item.mainPos,
					Y:      contentRect.Y + line.pos + item.crossPos,
					Width:  item.outer(),
					Height: item.crossOuter,
				}
			} else {
				slot = Rect{
					X:      contentRect.X + line.pos + item.crossPos,
					Y:      contentRect.Y + item.mainPos,
					Width:  item.crossOuter,
					Height: item.outer(),
				}
			}

			// Apply the child's margin: shrink the slot to get the child's
			// border box. The child receives this as available space and
			// does not re-apply margin.
			childBorderBox := slot.Inset(item.style.Margin)
			calculateNode(item.node, childBorderBox, containing, force, pass)
		}
	}
}

// hypotheticalMain resolves a child's pre-flex main size, margin excluded.
func hypotheticalMain(item *flexItem, isRow bool, mainAvail int) int {
	explicit := item.style.Height
	if isRow {
		explicit = item.style.Width
	}
	if !explicit.IsAuto() {
		return explicit.Resolve(mainAvail, 0)
	}
	if !item.style.FlexBasis.IsAuto() {
		return item.style.FlexBasis.Resolve(mainAvail, 0)
	}
	if isRow {
		return item.measured.Width
	}
	return item.measured.Height
}

// collectLines groups items into flex lines. Nowrap containers get a single
// line holding everything.
func collectLines(items []flexItem, style Style, mainSize int) []flexLine {
	if style.Wrap == WrapNoWrap {
		return []flexLine{{start: 0, end: len(items)}}
	}

	var lines []flexLine
	start := 0
	used := 0
	for i := range items {
		outer := items[i].outer()
		count := i - start
		if count > 0 && used+style.Gap+outer > mainSize {
			lines = append(lines, flexLine{start: start, end: i})
			start = i
			used = outer
			continue
		}
		if count > 0 {
			used += style.Gap
		}
		used += outer
	}
	lines = append(lines, flexLine{start: start, end: len(items)})
	return lines
}

// flexLineMain grows or shrinks the items of one line to consume free main
// space, then reapplies min/max clamps.
func flexLineMain(lineItems []flexItem, style Style, isRow bool, mainSize int) {
	totalGrow := 0.0
	totalShrink := 0.0
	for i := range lineItems {
		totalGrow += lineItems[i].grow
		totalShrink += lineItems[i].shrink
	}

	freeSpace := lineFreeSpace(lineItems, style, mainSize)
	switch {
	case freeSpace > 0 && totalGrow > 0:
		for i := range lineItems {
			if lineItems[i].grow > 0 {
				extra := int(float64(freeSpace) * lineItems[i].grow / totalGrow)
				lineItems[i].mainContent += extra
			}
		}
	case freeSpace < 0 && totalShrink > 0:
		deficit := -freeSpace
		for i := range lineItems {
			if lineItems[i].shrink > 0 {
				reduction := int(float64(deficit) * lineItems[i].shrink / totalShrink)
				lineItems[i].mainContent = max(0, lineItems[i].mainContent-reduction)
			}
		}
	default:
		return
	}

	// Flexed sizes must still respect min/max, min winning.
	for i := range lineItems {
		lineItems[i].mainContent = clampMain(lineItems[i].style, lineItems[i].mainContent, isRow, mainSize)
	}
}

// lineFreeSpace returns the unconsumed main-axis space of a line after item
// outer sizes and gaps.
func lineFreeSpace(lineItems []flexItem, style Style, mainSize int) int {
	totalUsed := 0
	for i := range lineItems {
		totalUsed += lineItems[i].outer()
	}
	totalGap := style.Gap * max(0, len(lineItems)-1)
	return mainSize - totalUsed - totalGap
}

// sizeLines computes each line's cross extent and position. A line's extent
// starts at the largest hypothetical cross size among its items; leftover
// container space is then distributed equally across lines, so a single line
// fills the whole cross axis and stretch children fill their band.
func sizeLines(lines []flexLine, items []flexItem, isRow bool, crossSize int) {
	total := 0
	for li := range lines {
		line := &lines[li]
		extent := 0
		for i := line.start; i < line.end; i++ {
			if c := hypotheticalCross(&items[i], isRow, crossSize); c > extent {
				extent = c
			}
		}
		line.extent = extent
		total += extent
	}

	if leftover := crossSize - total; leftover > 0 && len(lines) > 0 {
		share := leftover / len(lines)
		rem := leftover % len(lines)
		for li := range lines {
			lines[li].extent += share
		}
		lines[len(lines)-1].extent += rem
	}

	pos := 0
	for li := range lines {
		lines[li].pos = pos
		pos += lines[li].extent
	}
}

// hypotheticalCross returns an item's pre-alignment outer cross size: the
// explicit dimension if set, else the measured intrinsic size. Auto items
// with no intrinsic size report zero and later stretch to their line.
func hypotheticalCross(item *flexItem, isRow bool, crossAvail int) int {
	explicit := item.style.Width
	measured := item.measured.Width
	if isRow {
		explicit = item.style.Height
		measured = item.measured.Height
	}
	if !explicit.IsAuto() {
		return explicit.Resolve(crossAvail, 0) + item.crossMargin
	}
	if measured > 0 {
		return measured + item.crossMargin
	}
	return 0
}

// alignItem computes an item's cross-axis slot size and offset within its
// line per the effective align mode.
func alignItem(item *flexItem, style Style, isRow bool, lineExtent int) {
	align := style.AlignItems
	if item.style.AlignSelf != nil {
		align = *item.style.AlignSelf
	}

	explicit := item.style.Width
	measured := item.measured.Width
	if isRow {
		explicit = item.style.Height
		measured = item.measured.Height
	}

	// Available cross space after margin
	availableCross := lineExtent - item.crossMargin

	var contentCross int
	switch {
	case !explicit.IsAuto():
		contentCross = explicit.Resolve(availableCross, availableCross)
	case align == AlignStretch:
		// Stretch: fill the line's band (minus margin)
		contentCross = availableCross
	case measured > 0:
		contentCross = measured
	default:
		contentCross = availableCross
	}

	item.crossOuter = contentCross + item.crossMargin
	item.crossPos = alignOffset(align, lineExtent, item.crossOuter)
}

// placeAbsolute positions one absolutely positioned child against the
// containing rect. Explicit dimensions win; otherwise opposing insets derive
// the size; otherwise the child's intrinsic size is used. Unset inset pairs
// fall back to the containing rect's start edge.
func placeAbsolute(child Layoutable, containing Rect, force bool, pass *calcPass) {
	style := child.LayoutStyle()
	margin := style.Margin

	left, hasLeft := resolveInset(style.Left, containing.Width)
	right, hasRight := resolveInset(style.Right, containing.Width)
	top, hasTop := resolveInset(style.Top, containing.Height)
	bottom, hasBottom := resolveInset(style.Bottom, containing.Height)

	var measured Size
	if style.Width.IsAuto() || style.Height.IsAuto() {
		measured = child.Measure(Size{Width: containing.Width, Height: containing.Height})
	}

	width := 0
	switch {
	case !style.Width.IsAuto():
		width = style.Width.Resolve(containing.Width, 0)
	case hasLeft && hasRight:
		width = containing.Width - left - right - margin.Horizontal()
	default:
		width = measured.Width
	}

	height := 0
	switch {
	case !style.Height.IsAuto():
		height = style.Height.Resolve(containing.Height, 0)
	case hasTop && hasBottom:
		height = containing.Height - top - bottom - margin.Vertical()
	default:
		height = measured.Height
	}

	// computeBorderBox reapplies min/max when the node recurses; pre-clamp
	// here so inset-derived positions use the final size.
	width = clampMain(style, width, true, containing.Width)
	height = clampMain(style, height, false, containing.Height)

	x := containing.X + margin.Left
	switch {
	case hasLeft:
		x = containing.X + left + margin.Left
	case hasRight:
		x = containing.Right() - right - margin.Right - width
	}

	y := containing.Y + margin.Top
	switch {
	case hasTop:
		y = containing.Y + top + margin.Top
	case hasBottom:
		y = containing.Bottom() - bottom - margin.Bottom - height
	}

	calculateNode(child, NewRect(x, y, width, height), containing, force, pass)
}

// resolveInset resolves one positioning inset. Auto means the edge is unset.
func resolveInset(v Value, available int) (int, bool) {
	if v.IsAuto() {
		return 0, false
	}
	return v.Resolve(available, 0), true
}

// clampMain clamps a main-axis content size against the style's min/max for
// that axis, the minimum winning. An auto maximum caps at the available
// space. Impossible min/max pairs are counted in computeBorderBox when the
// node itself is computed, not here.
func clampMain(style Style, size int, isRow bool, available int) int {
	minV, maxV := style.MinHeight, style.MaxHeight
	if isRow {
		minV, maxV = style.MinWidth, style.MaxWidth
	}
	return clamp(size, minV.Resolve(available, 0), maxV.Resolve(available, available))
}

// justifyPlan converts a justify mode into the starting offset of a line's
// first child and the extra spacing inserted between neighbors. Leftover
// space only spreads when positive; an overflowing line packs at the start
// whatever the mode.
func justifyPlan(justify Justify, free, count int) (offset, spacing int) {
	if free <= 0 || count == 0 {
		return 0, 0
	}

	switch justify {
	case JustifyEnd:
		offset = free
	case JustifyCenter:
		offset = free / 2
	case JustifySpaceBetween:
		if count > 1 {
			spacing = free / (count - 1)
		}
	case JustifySpaceAround:
		offset = free / (count * 2)
		if count > 1 {
			spacing = free / count
		}
	case JustifySpaceEvenly:
		offset = free / (count + 1)
		spacing = free / (count + 1)
	}
	return offset, spacing
}

// alignOffset returns where a slot of the given size sits within its line's
// band. Start and stretch both anchor to the band's start edge.
func alignOffset(align Align, bandSize, slotSize int) int {
	switch align {
	case AlignEnd:
		return bandSize - slotSize
	case AlignCenter:
		return (bandSize - slotSize) / 2
	}
	return 0
}
