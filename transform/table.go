package transform

import (
	"fmt"

	"github.com/tsawler/docstree/hast"
	"github.com/tsawler/docstree/model"
	"github.com/tsawler/docstree/style"
)

// Table converts a table into table > tr > td. Each cell's blocks are folded
// independently, so lists inside a cell never continue a list outside it.
func (t *Transformer) Table(tb *model.Table, path string) (hast.NodeID, error) {
	table := t.tree.NewElement("table", nil)

	for r, row := range tb.Rows {
		tr := t.tree.NewElement("tr", nil)
		for c, cell := range row.Cells {
			cellPath := fmt.Sprintf("%s.tableRows[%d].tableCells[%d]", path, r, c)
			content, err := t.Transform(cell.Content, cellPath)
			if err != nil {
				return hast.None, err
			}

			var props hast.Properties
			if decls := style.TableCell(cell.Style); decls.Len() > 0 {
				props.Set("style", decls.String())
			}
			t.tree.AppendChild(tr, t.tree.NewElement("td", props, content...))
		}
		t.tree.AppendChild(table, tr)
	}

	return table, nil
}
