// Package style maps document style attributes to CSS declarations.
//
// Every function in this package is pure: absent attributes are omitted from
// the result and nothing is ever reported as an error.
//
// # Units and Colors
//
// Dimensions keep their magnitude and unit verbatim (no unit conversion):
//
//	style.Dimension(model.Pt(12)) // "12pt"
//
// Colors are normalized [0,1] triples converted to 8-bit channels with
// round(c * 255):
//
//	style.RGB(color) // "rgb(128, 0, 255)"
//
// # Borders
//
// A border contributes a declaration only when its width magnitude is
// non-zero; a border with a color or dash style but no width is ignored.
package style
