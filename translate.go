package ornata

import (
	"fmt"

	"github.com/saren071/ornata-public-sub003/pkg/layout"
	"github.com/saren071/ornata-public-sub003/pkg/style"
)

// Translate derives a node's layout inputs from its resolved style. Unset
// properties keep the layout defaults; paint properties (color, background,
// border-color, opacity) are renderer concerns and are not consumed here.
// Keywords the mapping does not recognize are reported as diagnostics and
// leave the default in place, so a translation never fails.
func Translate(component string, rs *style.ResolvedStyle) (layout.Style, []style.Diagnostic) {
	ls := layout.DefaultStyle()
	if rs == nil {
		return ls, nil
	}
	t := &translator{component: component, rs: rs}

	ls.Width = t.dimension(style.PropWidth, ls.Width)
	ls.Height = t.dimension(style.PropHeight, ls.Height)
	ls.MinWidth = t.length(style.PropMinWidth, ls.MinWidth)
	ls.MinHeight = t.length(style.PropMinHeight, ls.MinHeight)
	ls.MaxWidth = t.dimension(style.PropMaxWidth, ls.MaxWidth)
	ls.MaxHeight = t.dimension(style.PropMaxHeight, ls.MaxHeight)

	ls.Direction = t.direction(ls.Direction)
	ls.Wrap = t.wrap(ls.Wrap)
	ls.JustifyContent = t.justify(ls.JustifyContent)
	ls.AlignItems = t.align(ls.AlignItems)
	ls.Gap = t.cells(style.PropGap, ls.Gap)

	ls.FlexGrow = t.number(style.PropFlexGrow, ls.FlexGrow)
	ls.FlexShrink = t.number(style.PropFlexShrink, ls.FlexShrink)
	ls.FlexBasis = t.dimension(style.PropFlexBasis, ls.FlexBasis)

	ls.Position = t.position(ls.Position)
	ls.Top = t.length(style.PropTop, ls.Top)
	ls.Right = t.length(style.PropRight, ls.Right)
	ls.Bottom = t.length(style.PropBottom, ls.Bottom)
	ls.Left = t.length(style.PropLeft, ls.Left)

	ls.Padding = t.edges(style.PropPadding)
	ls.Margin = t.edges(style.PropMargin)

	return ls, t.diags
}

// translator accumulates diagnostics while mapping one resolved style.
type translator struct {
	component string
	rs        *style.ResolvedStyle
	diags     []style.Diagnostic
}

func (t *translator) unknown(prop, word string) {
	t.diags = append(t.diags, style.Diagnostic{
		Component: t.component,
		Property:  prop,
		Detail:    fmt.Sprintf("unknown keyword %q", word),
	})
}

// dimension maps a length-or-auto property.
func (t *translator) dimension(prop string, def layout.Value) layout.Value {
	v, ok := t.rs.Get(prop)
	if !ok {
		return def
	}
	switch v.Kind() {
	case style.KindLength:
		return layout.Fixed(v.Length())
	case style.KindKeyword:
		if v.Keyword() == style.KeywordAuto {
			return layout.Auto()
		}
		t.unknown(prop, v.Keyword())
	}
	return def
}

// length maps a pure length property.
func (t *translator) length(prop string, def layout.Value) layout.Value {
	if v, ok := t.rs.Get(prop); ok && v.Kind() == style.KindLength {
		return layout.Fixed(v.Length())
	}
	return def
}

func (t *translator) cells(prop string, def int) int {
	return t.rs.LengthOr(prop, def)
}

func (t *translator) number(prop string, def float64) float64 {
	return t.rs.NumberOr(prop, def)
}

func (t *translator) edges(prop string) layout.Edges {
	in := t.rs.InsetsOr(prop, style.Insets{})
	return layout.EdgeTRBL(in.Top, in.Right, in.Bottom, in.Left)
}

func (t *translator) direction(def layout.Direction) layout.Direction {
	switch w := t.rs.KeywordOr(style.PropDirection, ""); w {
	case "":
		return def
	case "row":
		return layout.Row
	case "column":
		return layout.Column
	default:
		t.unknown(style.PropDirection, w)
		return def
	}
}

func (t *translator) wrap(def layout.Wrap) layout.Wrap {
	switch w := t.rs.KeywordOr(style.PropWrap, ""); w {
	case "":
		return def
	case "wrap":
		return layout.WrapWrap
	case "nowrap":
		return layout.WrapNoWrap
	default:
		t.unknown(style.PropWrap, w)
		return def
	}
}

func (t *translator) justify(def layout.Justify) layout.Justify {
	switch w := t.rs.KeywordOr(style.PropJustify, ""); w {
	case "":
		return def
	case "start":
		return layout.JustifyStart
	case "end":
		return layout.JustifyEnd
	case "center":
		return layout.JustifyCenter
	case "space-between":
		return layout.JustifySpaceBetween
	case "space-around":
		return layout.JustifySpaceAround
	case "space-evenly":
		return layout.JustifySpaceEvenly
	default:
		t.unknown(style.PropJustify, w)
		return def
	}
}

func (t *translator) align(def layout.Align) layout.Align {
	switch w := t.rs.KeywordOr(style.PropAlign, ""); w {
	case "":
		return def
	case "start":
		return layout.AlignStart
	case "end":
		return layout.AlignEnd
	case "center":
		return layout.AlignCenter
	case "stretch":
		return layout.AlignStretch
	default:
		t.unknown(style.PropAlign, w)
		return def
	}
}

func (t *translator) position(def layout.Position) layout.Position {
	switch w := t.rs.KeywordOr(style.PropPosition, ""); w {
	case "":
		return def
	case "static":
		return layout.PositionStatic
	case "relative":
		return layout.PositionRelative
	case "absolute":
		return layout.PositionAbsolute
	default:
		t.unknown(style.PropPosition, w)
		return def
	}
}
