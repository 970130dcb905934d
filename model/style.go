package model

// Dimension is a magnitude with a unit, e.g. 12 PT. A nil Magnitude means
// the field is absent.
type Dimension struct {
	Magnitude *float64
	Unit      string
}

// Pt is a convenience constructor for a dimension in points
func Pt(v float64) Dimension {
	return Dimension{Magnitude: &v, Unit: "pt"}
}

// IsSet reports whether the dimension carries a magnitude
func (d Dimension) IsSet() bool {
	return d.Magnitude != nil
}

// IsNonZero reports whether the dimension carries a non-zero magnitude
func (d Dimension) IsNonZero() bool {
	return d.Magnitude != nil && *d.Magnitude != 0
}

// RGBColor is a color with components normalized to [0,1]
type RGBColor struct {
	Red   float64
	Green float64
	Blue  float64
}

// OptionalColor is a color that may be absent (transparent)
type OptionalColor struct {
	Color *RGBColor
}

// IsSet reports whether a color value is present
func (c OptionalColor) IsSet() bool {
	return c.Color != nil
}

// Border describes one side of a paragraph, cell, or embedded object border
type Border struct {
	Color     OptionalColor
	Width     Dimension
	Padding   Dimension
	DashStyle string // SOLID, DOT, DASH
}

// ParagraphBorders groups the borders of a paragraph
type ParagraphBorders struct {
	Top     Border
	Bottom  Border
	Left    Border
	Right   Border
	Between Border
}

// ParagraphStyle holds paragraph-level style attributes
type ParagraphStyle struct {
	NamedStyleType  string // NORMAL_TEXT, TITLE, SUBTITLE, HEADING_1..HEADING_6
	Alignment       string // START, CENTER, END, JUSTIFIED
	Direction       string // LEFT_TO_RIGHT, RIGHT_TO_LEFT
	HeadingID       string
	IndentStart     Dimension
	IndentEnd       Dimension
	IndentFirstLine Dimension
	LineSpacing     float64 // percent, 100 is single spacing
	SpaceAbove      Dimension
	SpaceBelow      Dimension
	Borders         ParagraphBorders
}

// WeightedFontFamily is a font family with a numeric weight
type WeightedFontFamily struct {
	FontFamily string
	Weight     int
}

// Link is the target of a hyperlinked text run. At most one field is
// expected to be set.
type Link struct {
	URL        string
	HeadingID  string
	BookmarkID string
}

// TextStyle holds character-level style attributes
type TextStyle struct {
	Bold               bool
	Italic             bool
	Underline          bool
	Strikethrough      bool
	BaselineOffset     string // NONE, SUPERSCRIPT, SUBSCRIPT
	FontSize           Dimension
	WeightedFontFamily WeightedFontFamily
	BackgroundColor    OptionalColor
	ForegroundColor    OptionalColor
	Link               *Link
}

// TableCellStyle holds cell-level style attributes
type TableCellStyle struct {
	BackgroundColor  OptionalColor
	BorderTop        Border
	BorderBottom     Border
	BorderLeft       Border
	BorderRight      Border
	PaddingTop       Dimension
	PaddingBottom    Dimension
	PaddingLeft      Dimension
	PaddingRight     Dimension
	ContentAlignment string // TOP, MIDDLE, BOTTOM
}
