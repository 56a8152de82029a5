package parser

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"
)

// sheetRow is one row of a fixture sheet, keyed by 0-based column.
type sheetRow map[int]string

// gridRows expands sparse rows into a ragged [][]string.
func gridRows(rows ...sheetRow) [][]string {
	out := make([][]string, len(rows))
	for r, row := range rows {
		width := 0
		for c := range row {
			if c+1 > width {
				width = c + 1
			}
		}
		cells := make([]string, width)
		for c, v := range row {
			cells[c] = v
		}
		out[r] = cells
	}
	return out
}

// headerRow returns a day-header row with days 1..n starting at column first.
func headerRow(first, n int) sheetRow {
	row := sheetRow{0: "Jour"}
	for d := 1; d <= n; d++ {
		row[first+d-1] = strconv.Itoa(d)
	}
	return row
}

// idRow returns an identifier row in the clock export layout.
func idRow(id, name, dept string) sheetRow {
	return sheetRow{0: "Non :", 2: id, 8: "Nom :", 10: name, 16: "Département :", 18: dept}
}

// writeWorkbook saves rows into a new xlsx file under t.TempDir().
func writeWorkbook(t *testing.T, sheet string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("Failed to rename sheet: %v", err)
		}
	}
	for r, row := range rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("Failed to build cell name: %v", err)
			}
			if err := f.SetCellStr(sheet, cell, v); err != nil {
				t.Fatalf("Failed to set %s: %v", cell, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}
