package style

import (
	"slices"

	"github.com/samber/lo"
)

// ResolvedStyle is the immutable result of cascading every matching block for
// one (component, states) query. Instances are shared by reference out of the
// cascade cache: callers must never mutate one, and may compare pointers to
// detect "same resolution, nothing changed".
type ResolvedStyle struct {
	props map[string]Value
}

// newResolvedStyle wraps the accumulated property map. The map must not be
// written after this call.
func newResolvedStyle(props map[string]Value) *ResolvedStyle {
	return &ResolvedStyle{props: props}
}

// Get returns the value for a property and whether it was set.
func (rs *ResolvedStyle) Get(name string) (Value, bool) {
	v, ok := rs.props[name]
	return v, ok
}

// Has returns true if the property was set by any matching block.
func (rs *ResolvedStyle) Has(name string) bool {
	_, ok := rs.props[name]
	return ok
}

// Len returns the number of set properties.
func (rs *ResolvedStyle) Len() int {
	return len(rs.props)
}

// Properties returns the set property names in sorted order.
func (rs *ResolvedStyle) Properties() []string {
	names := lo.Keys(rs.props)
	slices.Sort(names)
	return names
}

// ColorOr returns the property as a color, or fallback when unset or not a
// color.
func (rs *ResolvedStyle) ColorOr(name string, fallback Color) Color {
	if v, ok := rs.props[name]; ok && v.Kind() == KindColor {
		return v.Color()
	}
	return fallback
}

// LengthOr returns the property as a length, or fallback when unset or not a
// length.
func (rs *ResolvedStyle) LengthOr(name string, fallback int) int {
	if v, ok := rs.props[name]; ok && v.Kind() == KindLength {
		return v.Length()
	}
	return fallback
}

// KeywordOr returns the property as a keyword, or fallback when unset or not
// a keyword.
func (rs *ResolvedStyle) KeywordOr(name string, fallback string) string {
	if v, ok := rs.props[name]; ok && v.Kind() == KindKeyword {
		return v.Keyword()
	}
	return fallback
}

// NumberOr returns the property as a number, or fallback when unset or not a
// number.
func (rs *ResolvedStyle) NumberOr(name string, fallback float64) float64 {
	if v, ok := rs.props[name]; ok && v.Kind() == KindNumber {
		return v.Number()
	}
	return fallback
}

// InsetsOr returns the property as insets, or fallback when unset or neither
// insets nor a uniform length shorthand.
func (rs *ResolvedStyle) InsetsOr(name string, fallback Insets) Insets {
	v, ok := rs.props[name]
	if !ok {
		return fallback
	}
	switch v.Kind() {
	case KindInsets:
		return v.Insets()
	case KindLength:
		return InsetsAll(v.Length())
	default:
		return fallback
	}
}
