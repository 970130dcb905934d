package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/tsawler/docstree/hast"
)

const outlineIndent = "  "

// Outline writes one line per node, indented by depth. Elements print as
// their start tag and text nodes as quoted strings. Lines wider than width
// display columns are truncated with an ellipsis; width <= 0 disables
// truncation.
func Outline(w io.Writer, tree *hast.Tree, width int) error {
	bw := bufio.NewWriter(w)
	for _, c := range tree.Children(tree.Root()) {
		writeOutline(bw, tree, c, 0, width)
	}
	return bw.Flush()
}

func writeOutline(w *bufio.Writer, tree *hast.Tree, id hast.NodeID, depth, width int) {
	line := strings.Repeat(outlineIndent, depth) + outlineLabel(tree, id)
	if width > 0 && runewidth.StringWidth(line) > width {
		line = runewidth.Truncate(line, width, "…")
	}
	w.WriteString(line)
	w.WriteByte('\n')

	for _, c := range tree.Children(id) {
		writeOutline(w, tree, c, depth+1, width)
	}
}

func outlineLabel(tree *hast.Tree, id hast.NodeID) string {
	if tree.Kind(id) == hast.KindText {
		return strconv.Quote(tree.Value(id))
	}

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tree.Tag(id))
	for _, p := range *tree.Props(id) {
		sb.WriteByte(' ')
		sb.WriteString(p.Key)
		sb.WriteString("=")
		sb.WriteString(strconv.Quote(p.Value))
	}
	sb.WriteByte('>')
	return sb.String()
}
