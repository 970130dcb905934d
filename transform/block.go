package transform

import (
	"fmt"

	"github.com/tsawler/docstree/hast"
	"github.com/tsawler/docstree/model"
	"github.com/tsawler/docstree/style"
)

// Paragraph converts a paragraph into one element without placing it. A list
// item becomes a bare li; list item styling is not applied.
func (t *Transformer) Paragraph(p *model.Paragraph, path string) hast.NodeID {
	children := t.runs(p.Runs, path)

	if p.IsListItem() {
		return t.tree.NewElement("li", nil, children...)
	}

	attrs := style.Paragraph(p.Style)
	var props hast.Properties
	if attrs.Style.Len() > 0 {
		props.Set("style", attrs.Style.String())
	}
	if attrs.Class != "" {
		props.Set("class", attrs.Class)
	}
	if attrs.ID != "" {
		props.Set("id", attrs.ID)
	}

	return t.tree.NewElement(style.NamedStyleTag(p.Style.NamedStyleType), props, children...)
}

func (t *Transformer) runs(runs []model.Run, path string) []hast.NodeID {
	children := make([]hast.NodeID, 0, len(runs))
	for i, r := range runs {
		if n, ok := t.Run(r, fmt.Sprintf("%s.elements[%d]", path, i)); ok {
			children = append(children, n)
		}
	}
	return children
}
