package parser

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/pointage-go/pkg/pointage/models"
)

var minutesPerHour = decimal.NewFromInt(60)

// HoursFromMinutes converts minutes to hours rounded to two decimals.
func HoursFromMinutes(minutes int) float64 {
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour).Round(2).InexactFloat64()
}

// AssembleRecords emits one record per block and mapped day whose punch cell
// yields at least one interval. Empty cells produce no record.
func AssembleRecords(grid models.Grid, period models.ReportingPeriod, days models.DayColumnMap,
	blocks []models.EmployeeBlock, policy PunchPolicy) ([]models.DailyRecord, error) {
	var records []models.DailyRecord

	for _, block := range blocks {
		for _, col := range days.Columns() {
			text := strings.TrimSpace(grid.Cell(block.PunchRow, col))
			if text == "" {
				continue
			}

			date, ok := period.Date(days[col])
			if !ok {
				policy.drop(Drop{Reason: DropInvalidDate, Row: block.PunchRow, Col: col, Token: date.String()})
				continue
			}

			intervals, err := ParsePunchCell(text, block.PunchRow, col, policy)
			if err != nil {
				return nil, err
			}
			if len(intervals) == 0 {
				policy.drop(Drop{Reason: DropNoIntervals, Row: block.PunchRow, Col: col, Token: text})
				continue
			}

			records = append(records, models.DailyRecord{
				EmployeeID:  block.EmployeeID,
				Name:        block.Name,
				Department:  block.Department,
				Date:        date,
				HoursWorked: HoursFromMinutes(SumMinutes(intervals)),
			})
		}
	}

	return records, nil
}

// SortRecords orders records by employee id, then date. Equal keys keep
// their relative order.
func SortRecords(records []models.DailyRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].EmployeeID != records[j].EmployeeID {
			return records[i].EmployeeID < records[j].EmployeeID
		}
		return records[i].Date.Before(records[j].Date)
	})
}

// Deduplicate drops records equal on (employee id, date, hours) to an
// earlier one, keeping the first occurrence.
func Deduplicate(records []models.DailyRecord) []models.DailyRecord {
	seen := make(map[models.RecordKey]struct{}, len(records))
	out := make([]models.DailyRecord, 0, len(records))
	for _, rec := range records {
		key := rec.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}
	return out
}
