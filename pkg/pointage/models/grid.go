// Package models defines data structures for time-clock extraction.
package models

// Grid is the text view of one sheet. Row and column indices are 0-based
// with the origin at the top-left cell. Rows may be ragged: any cell past
// the end of its row reads as the empty string.
type Grid struct {
	rows [][]string
}

// NewGrid copies rows into a Grid. The caller's slices are not retained.
func NewGrid(rows [][]string) Grid {
	copied := make([][]string, len(rows))
	for i, row := range rows {
		copied[i] = append([]string(nil), row...)
	}
	return Grid{rows: copied}
}

// NumRows returns the number of rows in the grid.
func (g Grid) NumRows() int {
	return len(g.rows)
}

// NumCols returns the width of the widest row.
func (g Grid) NumCols() int {
	width := 0
	for _, row := range g.rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// RowLen returns the number of cells stored for row r.
func (g Grid) RowLen(r int) int {
	if r < 0 || r >= len(g.rows) {
		return 0
	}
	return len(g.rows[r])
}

// Cell returns the text at (r, c), or "" when the cell does not exist.
func (g Grid) Cell(r, c int) string {
	if r < 0 || r >= len(g.rows) || c < 0 || c >= len(g.rows[r]) {
		return ""
	}
	return g.rows[r][c]
}

// Rows returns a copy of the underlying cells.
func (g Grid) Rows() [][]string {
	return NewGrid(g.rows).rows
}
