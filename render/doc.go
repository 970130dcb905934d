// Package render serializes HAST trees.
//
// The tree built by the transform package can be written as HTML, as
// Markdown, as HAST-shaped JSON (optionally filtered through a jq query),
// as YAML, or as an indented outline for inspection:
//
//	var buf bytes.Buffer
//	if err := render.HTML(&buf, tree); err != nil {
//		return err
//	}
//
// HTML is produced by converting the tree to golang.org/x/net/html nodes
// and rendering those, so escaping follows the HTML5 serialization rules.
// Markdown is derived from that HTML.
package render
