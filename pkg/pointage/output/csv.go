package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ukaji3/pointage-go/pkg/pointage/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVHeader is the column contract of the daily export.
var CSVHeader = []string{"emp_id", "name", "department", "date", "hours_worked"}

// CSVOptions configures WriteCSV.
type CSVOptions struct {
	// BOM prefixes the output with a UTF-8 byte order mark so spreadsheet
	// applications detect the encoding of accented names.
	BOM bool
}

// WriteCSV writes the header row then one row per record, in order.
func WriteCSV(w io.Writer, records []models.DailyRecord, opts CSVOptions) error {
	var closer io.Closer
	if opts.BOM {
		tw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
		w, closer = tw, tw
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, rec := range records {
		row := []string{
			rec.EmployeeID,
			rec.Name,
			rec.Department,
			rec.Date.String(),
			FormatHours(rec.HoursWorked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	if closer != nil {
		return closer.Close()
	}
	return nil
}

// FormatHours renders hours in their shortest form, keeping one decimal on
// whole numbers ("4.0", "8.25").
func FormatHours(h float64) string {
	if h == math.Trunc(h) && !math.IsInf(h, 0) {
		return strconv.FormatFloat(h, 'f', 1, 64)
	}
	return strconv.FormatFloat(h, 'f', -1, 64)
}
