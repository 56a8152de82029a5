package parser

import (
	"regexp"
	"strconv"

	"github.com/ukaji3/pointage-go/pkg/pointage/models"
)

var periodRe = regexp.MustCompile(`(\d{4})/(\d{2})/(\d{2})\s*~\s*(\d{2})/(\d{2})`)

// LocatePeriod scans the grid row by row for the first cell holding a
// "YYYY/MM/DD ~ MM/DD" range and returns its year and month. A match whose
// month is not 1-12 is skipped.
func LocatePeriod(grid models.Grid) (models.ReportingPeriod, error) {
	for r := 0; r < grid.NumRows(); r++ {
		for c := 0; c < grid.RowLen(r); c++ {
			if period, ok := MatchPeriod(grid.Cell(r, c)); ok {
				return period, nil
			}
		}
	}
	return models.ReportingPeriod{}, &PeriodNotFoundError{Rows: grid.NumRows()}
}

// MatchPeriod parses a period range out of a single cell.
func MatchPeriod(text string) (models.ReportingPeriod, bool) {
	m := periodRe.FindStringSubmatch(text)
	if m == nil {
		return models.ReportingPeriod{}, false
	}

	var fields [5]int
	for i := range fields {
		// \d{2,4} always fits in an int.
		fields[i], _ = strconv.Atoi(m[i+1])
	}

	period := models.ReportingPeriod{
		Year:     fields[0],
		Month:    fields[1],
		StartDay: fields[2],
		EndMonth: fields[3],
		EndDay:   fields[4],
	}
	if period.Month < 1 || period.Month > 12 {
		return models.ReportingPeriod{}, false
	}
	return period, true
}
