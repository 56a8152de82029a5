package pointage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/pointage-go/pkg/pointage/models"
	"github.com/ukaji3/pointage-go/pkg/pointage/parser"
)

// ParseFile parses the configured sheet of a workbook on disk.
func ParseFile(path string, opts Options) (*models.ParseResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewParseError("", StageOpen, err)
	}
	defer file.Close()

	result, err := Parse(file, opts)
	if err != nil {
		return nil, err
	}
	result.BookName = filepath.Base(path)
	return result, nil
}

// Parse decodes an xlsx or xls stream and parses the configured sheet.
func Parse(r io.Reader, opts Options) (*models.ParseResult, error) {
	wb, err := parser.OpenWorkbook(r)
	if err != nil {
		return nil, NewParseError("", StageOpen, err)
	}
	defer wb.Close()

	return ParseWorkbook(wb, opts)
}

// ParseWorkbook parses the configured sheet of an opened workbook.
// Malformed punch cells never fail the parse unless opts.Strict is set;
// a sheet without employee blocks yields an empty record list.
func ParseWorkbook(wb parser.Workbook, opts Options) (*models.ParseResult, error) {
	sheet := opts.sheetName()

	grid, resolved, err := parser.LoadGrid(wb, sheet)
	if err != nil {
		return nil, NewParseError(sheet, StageLoad, err)
	}

	ex, err := parser.Extract(grid, opts.parserConfig(resolved))
	if err != nil {
		return nil, NewParseError(resolved, StageParse, err)
	}

	if opts.Logger != nil {
		opts.Logger.Info("parsed sheet",
			"sheet", resolved,
			"period", ex.Period.String(),
			"header_row", ex.HeaderRow+1,
			"day_columns", len(ex.Days),
			"blocks", len(ex.Blocks),
			"records", len(ex.Records))
	}

	return &models.ParseResult{
		SheetName:  resolved,
		Period:     ex.Period,
		HeaderRow:  ex.HeaderRow,
		DayColumns: len(ex.Days),
		Blocks:     len(ex.Blocks),
		Records:    ex.Records,
	}, nil
}

// ListSheets returns the sheet names of a workbook on disk.
func ListSheets(path string) ([]string, error) {
	wb, err := parser.OpenWorkbookFile(path)
	if err != nil {
		return nil, NewParseError("", StageOpen, err)
	}
	defer wb.Close()

	return wb.SheetList(), nil
}
