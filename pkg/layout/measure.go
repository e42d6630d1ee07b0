package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TextMeasure returns a MeasureFunc reporting the display size of text in
// terminal cells. Width is the widest line; height is the line count. When
// max.Width is positive and a line exceeds it, the line wraps greedily at
// grapheme boundaries, so wide and combined glyphs never split.
func TextMeasure(text string) MeasureFunc {
	return func(max Size) Size {
		return measureText(text, max.Width)
	}
}

// measureText computes the wrapped cell dimensions of text at the given
// maximum width. maxWidth <= 0 means unconstrained.
func measureText(text string, maxWidth int) Size {
	if text == "" {
		return Size{}
	}

	widest := 0
	lines := 0
	for _, line := range strings.Split(text, "\n") {
		for _, width := range wrapLineWidths(line, maxWidth) {
			if width > widest {
				widest = width
			}
			lines++
		}
	}
	return Size{Width: widest, Height: lines}
}

// wrapLineWidths returns the cell width of each visual line a single logical
// line occupies after greedy wrapping. An empty line still occupies one row.
func wrapLineWidths(line string, maxWidth int) []int {
	total := lineWidth(line)
	if maxWidth <= 0 || total <= maxWidth {
		return []int{total}
	}

	var widths []int
	current := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		w := lineWidth(g.Str())
		if current > 0 && current+w > maxWidth {
			widths = append(widths, current)
			current = 0
		}
		current += w
	}
	if current > 0 {
		widths = append(widths, current)
	}
	if len(widths) == 0 {
		widths = []int{0}
	}
	return widths
}

// lineWidth returns the display width of s in cells.
func lineWidth(s string) int {
	return runewidth.StringWidth(s)
}
