package parser

import (
	"strings"

	"github.com/ukaji3/pointage-go/pkg/pointage/models"
)

// LoadGrid reads a sheet into a Grid of text cells. The sheet name is matched
// exactly first, then ignoring case and surrounding whitespace, since clock
// exports often carry a trailing space in the tab name. It returns the grid
// and the sheet name actually read.
func LoadGrid(wb Workbook, sheetName string) (models.Grid, string, error) {
	resolved, ok := ResolveSheet(wb.SheetList(), sheetName)
	if !ok {
		return models.Grid{}, "", &SheetNotFoundError{Sheet: sheetName, Available: wb.SheetList()}
	}

	rows, err := wb.Rows(resolved)
	if err != nil {
		return models.Grid{}, resolved, &UnreadableWorkbookError{Err: err}
	}

	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			rows[rowIdx][colIdx] = normalizeCell(cellValue)
		}
	}

	return models.NewGrid(rows), resolved, nil
}

// ResolveSheet finds name in sheets.
func ResolveSheet(sheets []string, name string) (string, bool) {
	for _, sheet := range sheets {
		if sheet == name {
			return sheet, true
		}
	}
	want := strings.TrimSpace(name)
	for _, sheet := range sheets {
		if strings.EqualFold(strings.TrimSpace(sheet), want) {
			return sheet, true
		}
	}
	return "", false
}

// normalizeCell maps whitespace-only cells to "". Any other text, including
// "nan" or "#N/A", is kept as written.
func normalizeCell(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}
