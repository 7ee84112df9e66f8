package table

// Row is an ordered sequence of cells.
type Row []Cell

// Table is an ordered sequence of rows. Rows may have different lengths.
type Table struct {
	Rows []Row
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Rows)
}

// Width returns the length of the widest row.
func (t *Table) Width() int {
	if t == nil {
		return 0
	}

	width := 0

	for _, row := range t.Rows {
		width = max(width, len(row))
	}

	return width
}

// Cell returns the cell at the given zero-based position.
// Positions outside the row yield an absent cell.
func (r Row) Cell(column int) Cell {
	if column < 0 || column >= len(r) {
		return AbsentCell()
	}

	return r[column]
}

// Strings returns the row values padded with empty strings to width.
// Absent cells become empty strings.
func (r Row) Strings(width int) []string {
	result := make([]string, max(width, len(r)))

	for i, cell := range r {
		result[i], _ = cell.Text()
	}

	return result
}

// Select returns a new table holding the columns [from, from+count) of every row.
// Missing positions are filled with absent cells.
func (t *Table) Select(from, count int) *Table {
	selected := &Table{Rows: make([]Row, 0, t.Len())}

	if t == nil {
		return selected
	}

	for _, row := range t.Rows {
		newRow := make(Row, count)
		for i := 0; i < count; i++ {
			newRow[i] = row.Cell(from + i)
		}

		selected.Rows = append(selected.Rows, newRow)
	}

	return selected
}
