package style

import (
	"fmt"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
)

// Theme documents are plain TOML encodings of the Sheet structure, not a
// stylesheet grammar:
//
//	[[rule]]
//	component = "Panel"
//
//	[[rule.block]]
//	props = { color = "white", padding = [1, 2, 1, 2] }
//
//	[[rule.block]]
//	states = ["warn"]
//	props = { color = "yellow" }
//
// Scalar props coerce by shape: integers become lengths, floats become
// numbers, four-element integer arrays become insets, and strings parse as
// colors first, keywords otherwise.
type themeDoc struct {
	Rules []themeRule `toml:"rule"`
}

type themeRule struct {
	Component string       `toml:"component"`
	Blocks    []themeBlock `toml:"block"`
}

type themeBlock struct {
	States []string       `toml:"states"`
	Props  map[string]any `toml:"props"`
}

// DecodeTheme parses a TOML theme document into a Sheet. Malformed TOML fails
// the whole document; an individually malformed property value only loses
// that one declaration, reported in the returned diagnostics. Properties
// within one block decode in sorted name order (TOML tables are unordered);
// cascade precedence comes from block order, which the document preserves.
func DecodeTheme(data []byte) (*Sheet, []Diagnostic, error) {
	var doc themeDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode theme: %w", err)
	}

	var diags []Diagnostic
	sheet := &Sheet{}
	for _, tr := range doc.Rules {
		rule := Rule{Component: tr.Component}
		for _, tb := range tr.Blocks {
			flags := make([]StateFlag, len(tb.States))
			for i, s := range tb.States {
				flags[i] = StateFlag(s)
			}
			block := Block{States: States(flags...)}

			names := lo.Keys(tb.Props)
			slices.Sort(names)
			for _, name := range names {
				v, reason := coerceValue(tb.Props[name])
				if reason != "" {
					diags = append(diags, Diagnostic{Component: tr.Component, Property: name, Detail: reason})
					continue
				}
				block.Declarations = append(block.Declarations, Decl(name, v))
			}
			rule.Blocks = append(rule.Blocks, block)
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet, diags, nil
}

// LoadTheme decodes a theme document and loads the resulting sheet, recording
// value diagnostics on the resolver. Only a TOML-level failure is an error.
func (r *Resolver) LoadTheme(data []byte) error {
	sheet, diags, err := DecodeTheme(data)
	if err != nil {
		return err
	}
	for _, d := range diags {
		r.recordDiag(d)
	}
	r.LoadSheet(sheet)
	return nil
}

// coerceValue maps a decoded TOML scalar onto a style Value by shape.
func coerceValue(raw any) (Value, string) {
	switch v := raw.(type) {
	case int64:
		return Length(int(v)), ""
	case float64:
		return Number(v), ""
	case string:
		if c, err := ParseColor(v); err == nil {
			return ColorValue(c), ""
		}
		return Keyword(v), ""
	case []any:
		if len(v) != 4 {
			return Value{}, fmt.Sprintf("insets need 4 elements, got %d", len(v))
		}
		var edges [4]int
		for i, elem := range v {
			n, ok := elem.(int64)
			if !ok {
				return Value{}, fmt.Sprintf("insets element %d is %T, want integer", i, elem)
			}
			edges[i] = int(n)
		}
		return InsetsValue(InsetsTRBL(edges[0], edges[1], edges[2], edges[3])), ""
	default:
		return Value{}, fmt.Sprintf("unsupported value type %T", raw)
	}
}
