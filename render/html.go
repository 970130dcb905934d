package render

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/docstree/hast"
)

// Node converts the subtree at id to an html.Node. The root becomes a
// DocumentNode holding the top-level nodes.
func Node(tree *hast.Tree, id hast.NodeID) *html.Node {
	var n *html.Node
	switch tree.Kind(id) {
	case hast.KindText:
		return &html.Node{Type: html.TextNode, Data: tree.Value(id)}
	case hast.KindRoot:
		n = &html.Node{Type: html.DocumentNode}
	default:
		tag := tree.Tag(id)
		props := tree.Props(id)
		attrs := make([]html.Attribute, 0, props.Len())
		for _, p := range *props {
			attrs = append(attrs, html.Attribute{Key: p.Key, Val: p.Value})
		}
		n = &html.Node{
			Type:     html.ElementNode,
			Data:     tag,
			DataAtom: atom.Lookup([]byte(tag)),
			Attr:     attrs,
		}
	}

	for _, c := range tree.Children(id) {
		n.AppendChild(Node(tree, c))
	}
	return n
}

// HTML writes the tree as an HTML fragment
func HTML(w io.Writer, tree *hast.Tree) error {
	return html.Render(w, Node(tree, tree.Root()))
}

// HTMLString returns the tree as an HTML fragment
func HTMLString(tree *hast.Tree) (string, error) {
	var buf bytes.Buffer
	if err := HTML(&buf, tree); err != nil {
		return "", err
	}
	return buf.String(), nil
}
