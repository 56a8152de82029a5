package parser

import "github.com/ukaji3/pointage-go/pkg/pointage/models"

// SegmentBlocks walks the grid from startRow looking for identifier rows.
// An identifier row and the row after it form one block; the scan then
// resumes two rows further down. Rows without an identifier label are
// skipped one at a time. An identifier on the last row has no punch row and
// yields no block.
func SegmentBlocks(grid models.Grid, startRow int, labels Labels) []models.EmployeeBlock {
	var blocks []models.EmployeeBlock
	offset := labels.offset()

	for r := max(startRow, 0); r < grid.NumRows(); {
		tokens := TokenizeRow(rowCells(grid, r))
		id := FindLabel(tokens, labels.ID, offset)
		if !id.Found {
			r++
			continue
		}

		if r+1 < grid.NumRows() {
			blocks = append(blocks, models.EmployeeBlock{
				EmployeeID: id.Value,
				Name:       FindLabel(tokens, labels.Name, offset).Value,
				Department: FindLabel(tokens, labels.Department, offset).Value,
				IDRow:      r,
				PunchRow:   r + 1,
			})
		}
		r += 2
	}

	return blocks
}

func rowCells(grid models.Grid, r int) []string {
	cells := make([]string, grid.RowLen(r))
	for c := range cells {
		cells[c] = grid.Cell(r, c)
	}
	return cells
}
