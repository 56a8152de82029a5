package status

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/pointage-go/pkg/pointage/models"
)

type summaryKey struct {
	id, name, department, role string
}

// Summarize aggregates records per employee and classifies each total
// against the monthly limit of the employee's role. Results are ordered by
// total hours, highest first.
func Summarize(records []models.AdjustedRecord, th Thresholds) []models.EmployeeSummary {
	groups := make(map[summaryKey][]models.DailyRecord)
	var order []summaryKey

	for _, rec := range records {
		key := summaryKey{
			id:         rec.EmployeeID,
			name:       rec.Name,
			department: rec.Department,
			role:       th.RoleOf(rec.Role),
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], rec.DailyRecord)
	}

	summaries := make([]models.EmployeeSummary, 0, len(order))
	for _, key := range order {
		days := groups[key]

		total := decimal.Zero
		for _, d := range days {
			total = total.Add(decimal.NewFromFloat(d.HoursWorked))
		}
		totalHours := total.Round(2).InexactFloat64()
		// Status and overtime use the exact limit; only the reported value is rounded.
		threshold := th.MonthlyFor(key.role)

		s := models.EmployeeSummary{
			EmployeeID:     key.id,
			Name:           key.name,
			Department:     key.department,
			Role:           key.role,
			TotalHours:     totalHours,
			DailyAverage:   total.Div(decimal.NewFromInt(int64(len(days)))).Round(2).InexactFloat64(),
			DaysWorked:     len(days),
			Threshold:      round2(threshold),
			OvertimeHours:  round2(max(0, totalHours-threshold)),
			RemainingHours: round2(max(0, threshold-totalHours)),
			Status:         DetermineStatus(totalHours, threshold, th.AlertMargin),
		}
		if rhythm, ok := ProjectWeeklyRhythm(days, th.WeeklyFor(key.role)); ok {
			s.Rhythm = &rhythm
		}
		summaries = append(summaries, s)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].TotalHours != summaries[j].TotalHours {
			return summaries[i].TotalHours > summaries[j].TotalHours
		}
		return summaries[i].EmployeeID < summaries[j].EmployeeID
	})
	return summaries
}

// FilterMonth keeps the records dated in month (any year). When nothing
// matches and showAllIfEmpty is set, all records are returned and
// usedFallback is true.
func FilterMonth(records []models.DailyRecord, month time.Month, showAllIfEmpty bool) (filtered []models.DailyRecord, usedFallback bool) {
	filtered = make([]models.DailyRecord, 0, len(records))
	for _, rec := range records {
		if rec.Date.Month == month {
			filtered = append(filtered, rec)
		}
	}
	if len(filtered) == 0 && showAllIfEmpty {
		return append([]models.DailyRecord(nil), records...), true
	}
	return filtered, false
}

// AvailableMonths lists the distinct months present, in ascending order.
func AvailableMonths(records []models.DailyRecord) []time.Month {
	seen := make(map[time.Month]bool)
	var months []time.Month
	for _, rec := range records {
		if !seen[rec.Date.Month] {
			seen[rec.Date.Month] = true
			months = append(months, rec.Date.Month)
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
