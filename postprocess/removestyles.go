package postprocess

import "github.com/tsawler/docstree/hast"

// RemoveStyles deletes every style attribute and unwraps span elements that
// are the sole child of their parent. Running it twice gives the same tree
// as running it once.
func RemoveStyles(tree *hast.Tree) {
	tree.Walk(tree.Root(), func(n hast.NodeID) bool {
		if tree.Kind(n) == hast.KindText {
			return false
		}

		for {
			children := tree.Children(n)
			if len(children) != 1 || !tree.IsElement(children[0], "span") {
				break
			}
			tree.Unwrap(children[0])
		}

		tree.Props(n).Delete("style")
		return true
	})
}
