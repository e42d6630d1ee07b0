package layout

// Direction selects the main axis of a container. Children advance along
// the main axis; the cross axis runs perpendicular to it.
type Direction uint8

const (
	Row    Direction = iota // main axis is horizontal
	Column                  // main axis is vertical
)

// Justify distributes leftover main-axis space within a line.
type Justify uint8

const (
	JustifyStart        Justify = iota // children packed toward the start edge
	JustifyEnd                         // children packed toward the end edge
	JustifyCenter                      // leftover split around the group
	JustifySpaceBetween                // gaps between children only
	JustifySpaceAround                 // half-gaps at the line edges
	JustifySpaceEvenly                 // equal gaps everywhere
)

// Align positions children across a line's cross axis.
type Align uint8

const (
	AlignStart   Align = iota // flush with the line's start
	AlignEnd                  // flush with the line's end
	AlignCenter               // centered within the line
	AlignStretch              // auto cross sizes fill the line
)

// Wrap specifies whether children that overflow the main axis start new
// lines. Wrapping is the zero value: a container breaks children onto a new
// line when the next child would exceed its main-axis extent.
type Wrap uint8

const (
	WrapWrap   Wrap = iota // Overflowing children start a new line
	WrapNoWrap             // Single line; children shrink or overflow
)

// Position specifies how a node is placed relative to normal flow.
type Position uint8

const (
	// PositionStatic places the node by normal flow. Inset values are ignored.
	PositionStatic Position = iota
	// PositionRelative places the node by normal flow, then offsets it by its
	// Top/Left (or Bottom/Right) insets.
	PositionRelative
	// PositionAbsolute removes the node from flow entirely. It is placed by
	// its insets relative to the nearest positioned ancestor, or the root.
	PositionAbsolute
)

// Style carries every property the layout pass reads. The zero Style is not
// the default configuration (its cross alignment is AlignStart and its
// shrink factor is zero); start from DefaultStyle instead.
type Style struct {
	// Own size. Auto means sized by the container or by measured content;
	// minimums and maximums clamp whatever the flex pass produces.
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// How this node arranges its children.
	Direction      Direction
	Wrap           Wrap
	JustifyContent Justify
	AlignItems     Align
	Gap            int // cells between adjacent children on the main axis

	// How this node behaves as a child of a flex container.
	FlexGrow   float64 // share of leftover main-axis space it claims
	FlexShrink float64 // share of main-axis overflow it absorbs
	FlexBasis  Value   // starting main size before flexing; Auto defers to Width/Height or content
	AlignSelf  *Align  // per-item cross alignment; nil inherits AlignItems

	// Placement. Insets resolve against the containing rect; Auto means the
	// edge is unset.
	Position Position
	Top      Value
	Right    Value
	Bottom   Value
	Left     Value

	// Space inside the border box and around it.
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns the style new elements start from: auto sizing, row
// direction, wrapping enabled, stretch cross alignment, shrink factor 1.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(),
		MaxHeight:  Auto(),
		Direction:  Row,
		Wrap:       WrapWrap,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
		FlexBasis:  Auto(),
		Top:        Auto(),
		Right:      Auto(),
		Bottom:     Auto(),
		Left:       Auto(),
	}
}
