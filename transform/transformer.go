package transform

import (
	"fmt"

	"github.com/tsawler/docstree/hast"
	"github.com/tsawler/docstree/model"
)

// Transformer builds output nodes for the blocks of one document into one
// tree. It is not safe for concurrent use; each call to Document uses its
// own Transformer.
type Transformer struct {
	doc  *model.Document
	tree *hast.Tree
	diag Diagnostics
}

// New creates a Transformer that allocates nodes in tree. doc supplies the
// list and inline object tables. A nil diag discards warnings.
func New(doc *model.Document, tree *hast.Tree, diag Diagnostics) *Transformer {
	if diag == nil {
		diag = Discard
	}
	return &Transformer{doc: doc, tree: tree, diag: diag}
}

// Tree returns the tree nodes are allocated in
func (t *Transformer) Tree() *hast.Tree {
	return t.tree
}

// Document transforms the body of doc into a new tree whose root children
// are the top-level nodes in creation order.
func Document(doc *model.Document, diag Diagnostics) (*hast.Tree, error) {
	tree := hast.New()
	t := New(doc, tree, diag)

	nodes, err := t.Transform(doc.Body, "body")
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		tree.AppendChild(tree.Root(), n)
	}
	return tree, nil
}

// Transform folds blocks left to right and returns the top-level nodes. A
// list item absorbed into an earlier list contributes no node, so the result
// may be shorter than blocks. path prefixes the location of warnings.
func (t *Transformer) Transform(blocks []model.Block, path string) ([]hast.NodeID, error) {
	out := make([]hast.NodeID, 0, len(blocks))
	lists := newListEngine(t)
	var state ListState

	for i, block := range blocks {
		blockPath := fmt.Sprintf("%s.content[%d]", path, i)

		switch b := block.(type) {
		case *model.Paragraph:
			el := t.Paragraph(b, blockPath+".paragraph")
			if !b.IsListItem() {
				state = state.Close()
				out = append(out, el)
				continue
			}

			next, placement, err := lists.Step(state, *b.Bullet, el)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", blockPath, err)
			}
			state = next
			if !placement.Absorbed {
				out = append(out, placement.Node)
			}

		case *model.Table:
			state = state.Close()
			el, err := t.Table(b, blockPath+".table")
			if err != nil {
				return nil, err
			}
			out = append(out, el)

		case *model.Unsupported:
			state = state.Close()
			t.warn(blockPath, "unsupported element: %s", b.Name)

		default:
			state = state.Close()
			t.warn(blockPath, "unsupported element: %T", block)
		}
	}

	return out, nil
}

func (t *Transformer) warn(path, format string, args ...any) {
	t.diag.Warn(Warning{Path: path, Message: fmt.Sprintf(format, args...)})
}
