package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tsawler/docstree/model"
)

// Dimension formats a dimension as magnitude followed by its unit. An absent
// magnitude yields "".
func Dimension(d model.Dimension) string {
	if d.Magnitude == nil {
		return ""
	}
	return strconv.FormatFloat(*d.Magnitude, 'f', -1, 64) + d.Unit
}

// RGB formats a color as rgb(r, g, b) with 8-bit channels. Missing
// components are 0.
func RGB(c model.OptionalColor) string {
	var rgb model.RGBColor
	if c.Color != nil {
		rgb = *c.Color
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", channel(rgb.Red), channel(rgb.Green), channel(rgb.Blue))
}

func channel(v float64) int {
	return int(math.Round(v * 255))
}

// TextAlign maps a paragraph alignment to a CSS text-align value
func TextAlign(alignment string) string {
	switch alignment {
	case "CENTER":
		return "center"
	case "END":
		return "end"
	case "JUSTIFIED":
		return "justify"
	default:
		return "start"
	}
}

// BorderCSS formats a border as a CSS border shorthand. A border without a
// width yields "".
func BorderCSS(b model.Border) string {
	if b.Width.Magnitude == nil {
		return ""
	}
	return Dimension(b.Width) + " " + RGB(b.Color) + " " + dashStyle(b.DashStyle)
}

func dashStyle(s string) string {
	switch s {
	case "DOT":
		return "dotted"
	case "DASH":
		return "dashed"
	default:
		return "solid"
	}
}

// Borders maps the four sides of a border box, plus an optional between
// border, to CSS declarations. The between border is drawn as the top border
// and its padding applies to both top and bottom.
func Borders(top, bottom, left, right model.Border, between *model.Border) Properties {
	var p Properties

	if left.Width.IsNonZero() {
		p.Set("border-left", BorderCSS(left))
	}
	if right.Width.IsNonZero() {
		p.Set("border-right", BorderCSS(right))
	}
	if top.Width.IsNonZero() {
		p.Set("border-top", BorderCSS(top))
	}
	if bottom.Width.IsNonZero() {
		p.Set("border-bottom", BorderCSS(bottom))
	}

	if between != nil {
		if between.Width.IsNonZero() {
			p.Set("border-top", BorderCSS(*between))
		}
		if between.Padding.IsNonZero() {
			p.Set("padding-top", Dimension(between.Padding))
			p.Set("padding-bottom", Dimension(between.Padding))
		}
	}

	if bottom.Padding.IsNonZero() {
		p.Set("padding-bottom", Dimension(bottom.Padding))
	}
	if top.Padding.IsNonZero() {
		p.Set("padding-top", Dimension(top.Padding))
	}
	if left.Padding.IsNonZero() {
		p.Set("padding-left", Dimension(left.Padding))
	}
	if right.Padding.IsNonZero() {
		p.Set("padding-right", Dimension(right.Padding))
	}

	return p
}

// NamedStyleTag maps a named paragraph style to an HTML tag name
func NamedStyleTag(namedStyleType string) string {
	switch namedStyleType {
	case "TITLE", "HEADING_1":
		return "h1"
	case "HEADING_2":
		return "h2"
	case "HEADING_3":
		return "h3"
	case "HEADING_4":
		return "h4"
	case "HEADING_5":
		return "h5"
	case "HEADING_6":
		return "h6"
	default:
		// NORMAL_TEXT, SUBTITLE and anything unknown
		return "p"
	}
}

// NamedStyleClass maps a named paragraph style to a CSS class name,
// e.g. HEADING_1 -> heading-1.
func NamedStyleClass(namedStyleType string) string {
	return strings.ToLower(strings.ReplaceAll(namedStyleType, "_", "-"))
}

// ListStyleType maps an ordered list glyph to a CSS list-style-type value.
// Unknown glyphs yield "".
func ListStyleType(glyphType string) string {
	switch glyphType {
	case "DECIMAL":
		return "decimal"
	case "ZERO_DECIMAL":
		return "decimal-leading-zero"
	case "UPPER_ALPHA":
		return "upper-alpha"
	case "ALPHA":
		return "lower-alpha"
	case "UPPER_ROMAN":
		return "upper-roman"
	case "ROMAN":
		return "lower-roman"
	default:
		return ""
	}
}
