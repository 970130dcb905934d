package model

// Table is a grid of cells. Each cell holds its own block sequence, so
// tables and lists may nest inside cells.
type Table struct {
	Rows []TableRow
}

func (t *Table) Kind() BlockKind { return BlockKindTable }
func (t *Table) block()          {}

// TableRow is one row of a table
type TableRow struct {
	Cells []TableCell
}

// TableCell is one cell of a table row
type TableCell struct {
	Content []Block
	Style   TableCellStyle
}

// NewTable creates a table with the given number of rows and columns whose
// cells are empty.
func NewTable(rows, cols int) *Table {
	table := &Table{Rows: make([]TableRow, rows)}
	for i := range table.Rows {
		table.Rows[i].Cells = make([]TableCell, cols)
	}
	return table
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the cell count of the widest row
func (t *Table) ColCount() int {
	cols := 0
	for _, row := range t.Rows {
		if len(row.Cells) > cols {
			cols = len(row.Cells)
		}
	}
	return cols
}

// SetCell replaces the content of the cell at row, col. Out of range
// coordinates are ignored.
func (t *Table) SetCell(row, col int, content ...Block) {
	if row < 0 || row >= len(t.Rows) {
		return
	}
	if col < 0 || col >= len(t.Rows[row].Cells) {
		return
	}
	t.Rows[row].Cells[col].Content = content
}
