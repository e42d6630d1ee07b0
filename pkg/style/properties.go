package style

import "fmt"

// Property names the resolver understands. Declarations naming anything else
// are skipped with a diagnostic.
const (
	PropColor       = "color"
	PropBackground  = "background"
	PropBorderColor = "border-color"

	PropWidth     = "width"
	PropHeight    = "height"
	PropMinWidth  = "min-width"
	PropMinHeight = "min-height"
	PropMaxWidth  = "max-width"
	PropMaxHeight = "max-height"

	PropPadding = "padding"
	PropMargin  = "margin"
	PropGap     = "gap"

	PropDirection = "direction"
	PropWrap      = "wrap"
	PropJustify   = "justify"
	PropAlign     = "align"

	PropPosition = "position"
	PropTop      = "top"
	PropRight    = "right"
	PropBottom   = "bottom"
	PropLeft     = "left"

	PropFlexGrow   = "flex-grow"
	PropFlexShrink = "flex-shrink"
	PropFlexBasis  = "flex-basis"

	PropOpacity = "opacity"
)

// KeywordAuto is the keyword form of an automatic dimension.
const KeywordAuto = "auto"

// propertyKinds maps each known property to the value kinds it accepts.
// Dimension properties also accept the "auto" keyword.
var propertyKinds = map[string][]Kind{
	PropColor:       {KindColor},
	PropBackground:  {KindColor},
	PropBorderColor: {KindColor},

	PropWidth:     {KindLength, KindKeyword},
	PropHeight:    {KindLength, KindKeyword},
	PropMinWidth:  {KindLength},
	PropMinHeight: {KindLength},
	PropMaxWidth:  {KindLength, KindKeyword},
	PropMaxHeight: {KindLength, KindKeyword},

	PropPadding: {KindInsets, KindLength},
	PropMargin:  {KindInsets, KindLength},
	PropGap:     {KindLength},

	PropDirection: {KindKeyword},
	PropWrap:      {KindKeyword},
	PropJustify:   {KindKeyword},
	PropAlign:     {KindKeyword},

	PropPosition: {KindKeyword},
	PropTop:      {KindLength},
	PropRight:    {KindLength},
	PropBottom:   {KindLength},
	PropLeft:     {KindLength},

	PropFlexGrow:   {KindNumber},
	PropFlexShrink: {KindNumber},
	PropFlexBasis:  {KindLength, KindKeyword},

	PropOpacity: {KindNumber},
}

// propertyKeywords maps keyword-valued properties to their accepted words.
var propertyKeywords = map[string][]string{
	PropWidth:     {KeywordAuto},
	PropHeight:    {KeywordAuto},
	PropMaxWidth:  {KeywordAuto},
	PropMaxHeight: {KeywordAuto},
	PropFlexBasis: {KeywordAuto},
	PropDirection: {"row", "column"},
	PropWrap:      {"nowrap", "wrap"},
	PropJustify:   {"start", "end", "center", "space-between", "space-around", "space-evenly"},
	PropAlign:     {"start", "end", "center", "stretch"},
	PropPosition:  {"static", "relative", "absolute"},
}

// KnownProperty reports whether the resolver understands the property name.
func KnownProperty(name string) bool {
	_, ok := propertyKinds[name]
	return ok
}

// checkValue returns a non-empty reason when v is not acceptable for the
// named property.
func checkValue(name string, v Value) string {
	kinds, ok := propertyKinds[name]
	if !ok {
		return "unknown property"
	}
	accepted := false
	for _, k := range kinds {
		if v.Kind() == k {
			accepted = true
			break
		}
	}
	if !accepted {
		return fmt.Sprintf("%s value not allowed", v.Kind())
	}
	if v.Kind() == KindKeyword {
		for _, word := range propertyKeywords[name] {
			if v.Keyword() == word {
				return ""
			}
		}
		return fmt.Sprintf("unknown keyword %q", v.Keyword())
	}
	return ""
}
