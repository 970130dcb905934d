package style

import (
	"strconv"
	"strings"

	"github.com/tsawler/docstree/model"
)

// ParagraphAttributes holds the element attributes derived from a paragraph
// style. Empty fields mean the attribute is absent.
type ParagraphAttributes struct {
	Style Properties
	Class string
	ID    string
}

// Paragraph maps a paragraph style to element attributes. Indents become
// padding, spacing above and below becomes margin.
func Paragraph(ps model.ParagraphStyle) ParagraphAttributes {
	var p Properties

	if ps.Alignment != "" {
		if align := TextAlign(ps.Alignment); align != "start" {
			p.Set("text-align", align)
		}
	}

	b := ps.Borders
	p.Merge(Borders(b.Top, b.Bottom, b.Left, b.Right, &b.Between))

	if ps.Direction == "RIGHT_TO_LEFT" {
		p.Set("direction", "rtl")
	}

	if ps.IndentStart.IsSet() {
		p.Set("padding-left", Dimension(ps.IndentStart))
	}
	if ps.IndentEnd.IsSet() {
		p.Set("padding-right", Dimension(ps.IndentEnd))
	}
	if ps.IndentFirstLine.IsSet() {
		p.Set("text-indent", Dimension(ps.IndentFirstLine))
	}

	if ps.LineSpacing != 0 && ps.LineSpacing != 100 {
		p.Set("line-height", strconv.FormatFloat(ps.LineSpacing, 'f', -1, 64)+"%")
	}

	if ps.SpaceAbove.IsSet() {
		p.Set("margin-top", Dimension(ps.SpaceAbove))
	}
	if ps.SpaceBelow.IsSet() {
		p.Set("margin-bottom", Dimension(ps.SpaceBelow))
	}

	attrs := ParagraphAttributes{Style: p, ID: ps.HeadingID}
	if ps.NamedStyleType != "" {
		attrs.Class = NamedStyleClass(ps.NamedStyleType)
	}
	return attrs
}

// Text maps character-level style attributes that have no semantic HTML tag
// to CSS declarations.
func Text(ts model.TextStyle) Properties {
	var p Properties

	if ts.BackgroundColor.IsSet() {
		p.Set("background-color", RGB(ts.BackgroundColor))
	}
	if ts.FontSize.IsSet() {
		p.Set("font-size", Dimension(ts.FontSize))
	}
	if ts.WeightedFontFamily.FontFamily != "" {
		p.Set("font-family", ts.WeightedFontFamily.FontFamily)
	}
	if ts.WeightedFontFamily.Weight != 0 {
		p.Set("font-weight", strconv.Itoa(ts.WeightedFontFamily.Weight))
	}
	if ts.ForegroundColor.IsSet() {
		p.Set("color", RGB(ts.ForegroundColor))
	}

	return p
}

// TableCell maps cell-level style attributes to CSS declarations
func TableCell(cs model.TableCellStyle) Properties {
	var p Properties

	if cs.BackgroundColor.IsSet() {
		p.Set("background-color", RGB(cs.BackgroundColor))
	}

	p.Merge(Borders(cs.BorderTop, cs.BorderBottom, cs.BorderLeft, cs.BorderRight, nil))

	if cs.PaddingBottom.IsSet() {
		p.Set("padding-bottom", Dimension(cs.PaddingBottom))
	}
	if cs.PaddingLeft.IsSet() {
		p.Set("padding-left", Dimension(cs.PaddingLeft))
	}
	if cs.PaddingRight.IsSet() {
		p.Set("padding-right", Dimension(cs.PaddingRight))
	}
	if cs.PaddingTop.IsSet() {
		p.Set("padding-top", Dimension(cs.PaddingTop))
	}

	if cs.ContentAlignment != "" && cs.ContentAlignment != "CONTENT_ALIGNMENT_UNSPECIFIED" {
		p.Set("vertical-align", strings.ToLower(cs.ContentAlignment))
	}

	return p
}

// EmbeddedObject maps the size, border and margins of an inline object to
// CSS declarations.
func EmbeddedObject(obj model.InlineObject) Properties {
	var p Properties

	if obj.Width.IsSet() {
		p.Set("width", Dimension(obj.Width))
	}
	if obj.Height.IsSet() {
		p.Set("height", Dimension(obj.Height))
	}
	if obj.Border.Width.IsNonZero() {
		p.Set("border", BorderCSS(obj.Border))
	}
	if obj.MarginTop.IsSet() {
		p.Set("margin-top", Dimension(obj.MarginTop))
	}
	if obj.MarginBottom.IsSet() {
		p.Set("margin-bottom", Dimension(obj.MarginBottom))
	}
	if obj.MarginLeft.IsSet() {
		p.Set("margin-left", Dimension(obj.MarginLeft))
	}
	if obj.MarginRight.IsSet() {
		p.Set("margin-right", Dimension(obj.MarginRight))
	}

	return p
}
