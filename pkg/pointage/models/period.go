package models

import (
	"fmt"
	"sort"
	"time"
)

// ReportingPeriod is the year and month a sheet covers, read once from the
// embedded "YYYY/MM/DD ~ MM/DD" cell. Every record date of a parse combines
// Year and Month with a day-of-month from the day-header row.
type ReportingPeriod struct {
	// Year is the four-digit year of the range start.
	Year int `json:"year"`
	// Month is the month of the range start (1-12).
	Month int `json:"month"`
	// StartDay is the first day of the printed range.
	StartDay int `json:"start_day"`
	// EndMonth is the month of the range end as printed.
	EndMonth int `json:"end_month"`
	// EndDay is the last day of the printed range.
	EndDay int `json:"end_day"`
}

// Date returns the record date for a day-of-month. ok is false when the day
// does not exist in the period's month.
func (p ReportingPeriod) Date(day int) (Date, bool) {
	d := NewDate(p.Year, time.Month(p.Month), day)
	return d, d.Valid()
}

// DaysInMonth returns the calendar length of the period's month.
func (p ReportingPeriod) DaysInMonth() int {
	return DaysIn(p.Year, time.Month(p.Month))
}

func (p ReportingPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// DayColumnMap maps a grid column index to the day-of-month printed in the
// day-header row above it.
type DayColumnMap map[int]int

// Columns returns the mapped column indices in ascending order.
func (m DayColumnMap) Columns() []int {
	cols := make([]int, 0, len(m))
	for col := range m {
		cols = append(cols, col)
	}
	sort.Ints(cols)
	return cols
}
