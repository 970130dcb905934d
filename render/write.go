package render

import (
	"fmt"
	"io"

	"github.com/tsawler/docstree/format"
	"github.com/tsawler/docstree/hast"
)

// WriteOptions holds the format-specific settings used by Write
type WriteOptions struct {
	// Query is a jq program applied to JSON output.
	Query string
	// Width truncates outline lines; 0 disables truncation.
	Width int
}

// Write renders tree to w in format f
func Write(w io.Writer, tree *hast.Tree, f format.Format, opts WriteOptions) error {
	switch f {
	case format.HTML:
		if err := HTML(w, tree); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case format.Markdown:
		return Markdown(w, tree)
	case format.JSON:
		return JSON(w, tree, opts.Query)
	case format.YAML:
		return YAML(w, tree)
	case format.Outline:
		return Outline(w, tree, opts.Width)
	default:
		return fmt.Errorf("render: unsupported format: %s", f)
	}
}
