package style

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

// Color is a 24-bit RGB style color. The zero value is black.
type Color struct {
	R, G, B uint8
}

// RGB returns a Color with the given components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// namedColors maps the color keywords theme documents may use.
var namedColors = map[string]Color{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 255, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"magenta": {255, 0, 255},
	"cyan":    {0, 255, 255},
	"gray":    {128, 128, 128},
	"orange":  {255, 165, 0},
}

// ParseColor parses a named color ("white", "yellow", ...) or a hex color
// ("#RGB" or "#RRGGBB").
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return Color{R: r, G: g, B: b}, nil
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("parse color %q: unknown color name", s)
}

// MustColor parses a color and panics on failure. Intended for fixed colors
// in code, not for user input.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorNames returns the sorted list of recognized color keywords.
func ColorNames() []string {
	names := lo.Keys(namedColors)
	slices.Sort(names)
	return names
}

// Hex returns the color in "#rrggbb" form.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// Mix blends c toward other in Lab space. t=0 returns c, t=1 returns other.
// Blending in Lab keeps midpoints perceptually sensible.
func (c Color) Mix(other Color, t float64) Color {
	blended := c.colorful().BlendLab(other.colorful(), t).Clamped()
	r, g, b := blended.RGB255()
	return Color{R: r, G: g, B: b}
}

// String returns the color in hex form.
func (c Color) String() string {
	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
