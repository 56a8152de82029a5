package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/pointage-go/pkg/pointage/models"
)

// DefaultMinDayColumns is the stricter of the two thresholds seen in clock
// exports. Lower values (down to 5) accept shorter reporting periods but may
// mistake another numeric row for the day header.
const DefaultMinDayColumns = 10

var dayCellRe = regexp.MustCompile(`^\d+(\.\d+)?$`)

// LocateDayHeader returns the first row with at least minDayColumns numeric
// cells, not counting column 0, and the column-to-day mapping built from it.
// Mapped values outside 1-31 are left out of the map.
func LocateDayHeader(grid models.Grid, minDayColumns int) (int, models.DayColumnMap, error) {
	if minDayColumns < 1 {
		minDayColumns = DefaultMinDayColumns
	}

	bestRow, bestCount := -1, -1
	for r := 0; r < grid.NumRows(); r++ {
		count := 0
		for c := 1; c < grid.RowLen(r); c++ {
			if isDayCell(grid.Cell(r, c)) {
				count++
			}
		}
		if count >= minDayColumns {
			return r, dayColumns(grid, r), nil
		}
		if count > bestCount {
			bestRow, bestCount = r, count
		}
	}

	return -1, nil, &DayHeaderNotFoundError{
		MinDayColumns: minDayColumns,
		BestRow:       bestRow,
		BestCount:     max(bestCount, 0),
	}
}

func dayColumns(grid models.Grid, row int) models.DayColumnMap {
	days := make(models.DayColumnMap)
	for c := 0; c < grid.RowLen(row); c++ {
		text := strings.TrimSpace(grid.Cell(row, c))
		if !dayCellRe.MatchString(text) {
			continue
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			continue
		}
		day := int(f)
		if day < 1 || day > 31 {
			continue
		}
		days[c] = day
	}
	return days
}

func isDayCell(s string) bool {
	return dayCellRe.MatchString(strings.TrimSpace(s))
}
