// Package status classifies worked hours against overtime thresholds.
package status

import (
	"sort"

	"github.com/ukaji3/pointage-go/pkg/pointage/models"
)

// DetermineStatus classifies a total: Overrun above the threshold, Alert
// within alertMargin of it (the threshold itself included), Normal otherwise.
func DetermineStatus(totalHours, threshold, alertMargin float64) models.Status {
	if totalHours > threshold {
		return models.StatusOverrun
	}
	if threshold-totalHours <= alertMargin {
		return models.StatusAlert
	}
	return models.StatusNormal
}

// RhythmWindow is the maximum number of trailing records in a projection.
const RhythmWindow = 7

// MinRhythmDays is the minimum number of records needed for a projection.
const MinRhythmDays = 3

// surveillanceRatio is the share of the weekly threshold that starts surveillance.
const surveillanceRatio = 0.9

// ProjectWeeklyRhythm projects one employee's weekly hours from their latest
// daily records (at most RhythmWindow by date). ok is false when fewer than
// MinRhythmDays records are available.
func ProjectWeeklyRhythm(records []models.DailyRecord, weeklyThreshold float64) (models.WeeklyRhythm, bool) {
	if len(records) < MinRhythmDays {
		return models.WeeklyRhythm{}, false
	}

	sorted := append([]models.DailyRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	if len(sorted) > RhythmWindow {
		sorted = sorted[len(sorted)-RhythmWindow:]
	}

	sum := 0.0
	for _, rec := range sorted {
		sum += rec.HoursWorked
	}
	average := sum / float64(len(sorted))
	projected := average * 7

	rhythm := models.WeeklyRhythm{
		Status:               models.RhythmNormal,
		ProjectedWeeklyHours: round2(projected),
		DailyAverage:         round2(average),
		Days:                 len(sorted),
		WindowStart:          sorted[0].Date,
		WindowEnd:            sorted[len(sorted)-1].Date,
	}
	switch {
	case projected > weeklyThreshold:
		rhythm.Status = models.RhythmOverrunRisk
	case projected > surveillanceRatio*weeklyThreshold:
		rhythm.Status = models.RhythmSurveillance
	}
	return rhythm, true
}
