package transform

import (
	"strconv"
	"strings"

	"github.com/tsawler/docstree/hast"
	"github.com/tsawler/docstree/model"
)

// dump renders a subtree compactly: tag[key=value](children...) for
// elements and quoted strings for text.
func dump(tree *hast.Tree, id hast.NodeID) string {
	if tree.Kind(id) == hast.KindText {
		return strconv.Quote(tree.Value(id))
	}

	var sb strings.Builder
	sb.WriteString(tree.Tag(id))
	for _, p := range *tree.Props(id) {
		sb.WriteString("[" + p.Key + "=" + p.Value + "]")
	}
	if children := tree.Children(id); len(children) > 0 {
		parts := make([]string, len(children))
		for i, c := range children {
			parts[i] = dump(tree, c)
		}
		sb.WriteString("(" + strings.Join(parts, ",") + ")")
	}
	return sb.String()
}

func dumpAll(tree *hast.Tree, ids []hast.NodeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = dump(tree, id)
	}
	return out
}

func text(s string) *model.TextRun {
	return &model.TextRun{Content: s}
}

func para(s string) *model.Paragraph {
	return &model.Paragraph{Runs: []model.Run{text(s + "\n")}}
}

func heading(s string) *model.Paragraph {
	return &model.Paragraph{
		Style: model.ParagraphStyle{NamedStyleType: "HEADING_1"},
		Runs:  []model.Run{text(s + "\n")},
	}
}

func item(listID string, level int, s string) *model.Paragraph {
	return &model.Paragraph{
		Runs:   []model.Run{text(s + "\n")},
		Bullet: &model.ListMembership{ListID: listID, NestingLevel: level},
	}
}

// newDoc returns a document with bulleted lists g1 and g2 of four levels
// each, and an ordered list n1 starting at 3.
func newDoc(blocks ...model.Block) *model.Document {
	doc := model.NewDocument()
	bullets := model.List{NestingLevels: []model.NestingLevel{
		{GlyphType: "GLYPH_TYPE_UNSPECIFIED"},
		{GlyphType: "GLYPH_TYPE_UNSPECIFIED"},
		{GlyphType: "GLYPH_TYPE_UNSPECIFIED"},
		{GlyphType: "GLYPH_TYPE_UNSPECIFIED"},
	}}
	doc.Lists["g1"] = bullets
	doc.Lists["g2"] = bullets
	doc.Lists["n1"] = model.List{NestingLevels: []model.NestingLevel{
		{GlyphType: "DECIMAL", StartNumber: 3},
		{GlyphType: "ALPHA", StartNumber: 1},
	}}
	for _, b := range blocks {
		doc.AddBlock(b)
	}
	return doc
}

func transformBody(doc *model.Document) (*hast.Tree, []hast.NodeID, *Collector, error) {
	var diag Collector
	tree := hast.New()
	nodes, err := New(doc, tree, &diag).Transform(doc.Body, "body")
	return tree, nodes, &diag, err
}
