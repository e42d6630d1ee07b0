package style

import (
	"fmt"
	"strconv"
)

// Kind distinguishes the closed set of value variants a style property can
// carry.
type Kind uint8

const (
	// KindInvalid is the zero Value; it matches no property.
	KindInvalid Kind = iota
	// KindLength is a dimension in cells (terminal) or device units (window).
	KindLength
	// KindColor is a 24-bit RGB color.
	KindColor
	// KindKeyword is an enumerated word such as "row" or "space-between".
	KindKeyword
	// KindNumber is a unitless number such as a flex factor.
	KindNumber
	// KindInsets is a top/right/bottom/left edge quadruple.
	KindInsets
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindLength:
		return "length"
	case KindColor:
		return "color"
	case KindKeyword:
		return "keyword"
	case KindNumber:
		return "number"
	case KindInsets:
		return "insets"
	default:
		return "invalid"
	}
}

// Insets holds per-edge spacing values in the order top, right, bottom, left.
type Insets struct {
	Top, Right, Bottom, Left int
}

// InsetsAll returns Insets with the same value on every edge.
func InsetsAll(n int) Insets {
	return Insets{Top: n, Right: n, Bottom: n, Left: n}
}

// InsetsSymmetric returns Insets with vertical applied to top/bottom and
// horizontal applied to left/right.
func InsetsSymmetric(vertical, horizontal int) Insets {
	return Insets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// InsetsTRBL returns Insets with explicit top, right, bottom, left values.
func InsetsTRBL(top, right, bottom, left int) Insets {
	return Insets{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Value is one typed style value. It is a closed tagged variant: exactly one
// of the payload fields is meaningful, selected by Kind. The zero Value is
// invalid.
type Value struct {
	kind    Kind
	length  int
	color   Color
	keyword string
	number  float64
	insets  Insets
}

// Length returns a Value holding a dimension of n cells.
func Length(n int) Value {
	return Value{kind: KindLength, length: n}
}

// ColorValue returns a Value holding c.
func ColorValue(c Color) Value {
	return Value{kind: KindColor, color: c}
}

// Keyword returns a Value holding the enumerated word.
func Keyword(word string) Value {
	return Value{kind: KindKeyword, keyword: word}
}

// Number returns a Value holding a unitless number.
func Number(n float64) Value {
	return Value{kind: KindNumber, number: n}
}

// InsetsValue returns a Value holding the edge quadruple.
func InsetsValue(in Insets) Value {
	return Value{kind: KindInsets, insets: in}
}

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Length returns the dimension payload.
// Panics if the value is not a length.
func (v Value) Length() int {
	if v.kind != KindLength {
		panic("style: Value.Length() called on " + v.kind.String() + " value")
	}
	return v.length
}

// Color returns the color payload.
// Panics if the value is not a color.
func (v Value) Color() Color {
	if v.kind != KindColor {
		panic("style: Value.Color() called on " + v.kind.String() + " value")
	}
	return v.color
}

// Keyword returns the keyword payload.
// Panics if the value is not a keyword.
func (v Value) Keyword() string {
	if v.kind != KindKeyword {
		panic("style: Value.Keyword() called on " + v.kind.String() + " value")
	}
	return v.keyword
}

// Number returns the number payload.
// Panics if the value is not a number.
func (v Value) Number() float64 {
	if v.kind != KindNumber {
		panic("style: Value.Number() called on " + v.kind.String() + " value")
	}
	return v.number
}

// Insets returns the insets payload.
// Panics if the value is not insets.
func (v Value) Insets() Insets {
	if v.kind != KindInsets {
		panic("style: Value.Insets() called on " + v.kind.String() + " value")
	}
	return v.insets
}

// Equal returns true if both values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindLength:
		return v.length == other.length
	case KindColor:
		return v.color == other.color
	case KindKeyword:
		return v.keyword == other.keyword
	case KindNumber:
		return v.number == other.number
	case KindInsets:
		return v.insets == other.insets
	}
	return true
}

// String returns a human-readable form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindLength:
		return strconv.Itoa(v.length)
	case KindColor:
		return v.color.String()
	case KindKeyword:
		return v.keyword
	case KindNumber:
		return strconv.FormatFloat(v.number, 'g', -1, 64)
	case KindInsets:
		return fmt.Sprintf("%d %d %d %d", v.insets.Top, v.insets.Right, v.insets.Bottom, v.insets.Left)
	default:
		return "<invalid>"
	}
}
