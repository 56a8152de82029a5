package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Workbook is a decoded spreadsheet file.
type Workbook interface {
	// SheetList returns sheet names in workbook order.
	SheetList() []string
	// Rows returns every row of a sheet as text. Rows may be ragged.
	Rows(sheet string) ([][]string, error)
	Close() error
}

// oleSignature starts every legacy BIFF (.xls) file.
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// OpenWorkbook decodes an .xlsx or legacy .xls stream.
func OpenWorkbook(r io.Reader) (Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &UnreadableWorkbookError{Err: err}
	}

	if bytes.HasPrefix(data, oleSignature) {
		wb, xlsErr := openXLS(data)
		if xlsErr == nil {
			return wb, nil
		}
		// Encrypted xlsx files also live in an OLE container.
		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, &UnreadableWorkbookError{Err: xlsErr}
		}
		return NewExcelizeWorkbook(f), nil
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &UnreadableWorkbookError{Err: err}
	}
	return NewExcelizeWorkbook(f), nil
}

// OpenWorkbookFile opens a workbook from disk.
func OpenWorkbookFile(path string) (Workbook, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return OpenWorkbook(file)
}

// NewExcelizeWorkbook wraps an already opened excelize file.
func NewExcelizeWorkbook(f *excelize.File) Workbook {
	return &xlsxWorkbook{f: f}
}

type xlsxWorkbook struct {
	f *excelize.File
}

func (w *xlsxWorkbook) SheetList() []string {
	return w.f.GetSheetList()
}

func (w *xlsxWorkbook) Rows(sheet string) ([][]string, error) {
	return w.f.GetRows(sheet)
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}

type xlsWorkbook struct {
	wb *xls.WorkBook
}

func openXLS(data []byte) (wb Workbook, err error) {
	// The BIFF decoder panics on some truncated streams.
	defer func() {
		if r := recover(); r != nil {
			wb, err = nil, fmt.Errorf("xls decoder: %v", r)
		}
	}()

	book, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("no Workbook stream in OLE container")
	}
	return &xlsWorkbook{wb: book}, nil
}

func (w *xlsWorkbook) SheetList() []string {
	var names []string
	for i := 0; i < w.wb.NumSheets(); i++ {
		if sheet := w.wb.GetSheet(i); sheet != nil {
			names = append(names, sheet.Name)
		}
	}
	return names
}

func (w *xlsWorkbook) Rows(name string) (rows [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("xls sheet %q: %v", name, r)
		}
	}()

	for i := 0; i < w.wb.NumSheets(); i++ {
		sheet := w.wb.GetSheet(i)
		if sheet == nil || sheet.Name != name {
			continue
		}

		rows = make([][]string, 0, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			// Missing rows stay in place so block rows remain adjacent.
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			// LastCol is one past the last cell when the row has a ROW record,
			// and the last cell itself when it does not.
			cols := make([]string, row.LastCol()+1)
			for c := range cols {
				cols[c] = row.Col(c)
			}
			rows = append(rows, trimTrailingBlanks(cols))
		}
		return rows, nil
	}

	return nil, &SheetNotFoundError{Sheet: name, Available: w.SheetList()}
}

func trimTrailingBlanks(cols []string) []string {
	n := len(cols)
	for n > 0 && cols[n-1] == "" {
		n--
	}
	return cols[:n]
}

func (w *xlsWorkbook) Close() error {
	return nil
}
