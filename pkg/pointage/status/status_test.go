package status

import (
	"testing"
	"time"

	"github.com/ukaji3/pointage-go/pkg/pointage/models"
)

func TestDetermineStatus(t *testing.T) {
	tests := []struct {
		total, threshold, margin float64
		expected                 models.Status
	}{
		{100, 100, 5, models.StatusAlert},
		{101, 100, 5, models.StatusOverrun},
		{80, 100, 5, models.StatusNormal},
		{95, 100, 5, models.StatusAlert},
		{94.99, 100, 5, models.StatusNormal},
		{0, 0, 0, models.StatusAlert},
		{100.01, 100, 0, models.StatusOverrun},
	}

	for _, tt := range tests {
		got := DetermineStatus(tt.total, tt.threshold, tt.margin)
		if got != tt.expected {
			t.Errorf("DetermineStatus(%v, %v, %v) = %s, expected %s",
				tt.total, tt.threshold, tt.margin, got, tt.expected)
		}
	}
}

// days returns one record per hours value on consecutive March 2024 days.
func days(hours ...float64) []models.DailyRecord {
	records := make([]models.DailyRecord, len(hours))
	for i, h := range hours {
		records[i] = models.DailyRecord{
			EmployeeID:  "E1",
			Date:        models.NewDate(2024, time.March, i+1),
			HoursWorked: h,
		}
	}
	return records
}

func TestProjectWeeklyRhythm(t *testing.T) {
	tests := []struct {
		name      string
		hours     []float64
		expected  models.RhythmStatus
		projected float64
	}{
		{"normal", []float64{5, 5, 5}, models.RhythmNormal, 35},
		{"surveillance", []float64{6, 6, 6}, models.RhythmSurveillance, 42},
		{"overrun risk", []float64{7, 7, 7, 7}, models.RhythmOverrunRisk, 49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rhythm, ok := ProjectWeeklyRhythm(days(tt.hours...), 42)
			if !ok {
				t.Fatal("Expected a projection")
			}
			if rhythm.Status != tt.expected || rhythm.ProjectedWeeklyHours != tt.projected {
				t.Errorf("rhythm = %+v, expected %s at %v", rhythm, tt.expected, tt.projected)
			}
		})
	}
}

func TestProjectWeeklyRhythmTooFewDays(t *testing.T) {
	if _, ok := ProjectWeeklyRhythm(days(8, 8), 42); ok {
		t.Error("Expected no projection with 2 records")
	}
	if _, ok := ProjectWeeklyRhythm(nil, 42); ok {
		t.Error("Expected no projection with no records")
	}
}

func TestProjectWeeklyRhythmWindow(t *testing.T) {
	records := days(12, 6, 6, 6, 6, 6, 6, 6)
	// Input order must not matter.
	records[0], records[7] = records[7], records[0]

	rhythm, ok := ProjectWeeklyRhythm(records, 100)
	if !ok {
		t.Fatal("Expected a projection")
	}
	if rhythm.Days != RhythmWindow {
		t.Errorf("window = %d days, expected %d", rhythm.Days, RhythmWindow)
	}
	if rhythm.DailyAverage != 6 {
		t.Errorf("daily average = %v, expected the oldest day left out", rhythm.DailyAverage)
	}
	if rhythm.WindowStart.Day != 2 || rhythm.WindowEnd.Day != 8 {
		t.Errorf("window = %s..%s, expected 2024-03-02..2024-03-08", rhythm.WindowStart, rhythm.WindowEnd)
	}
}

func TestThresholds(t *testing.T) {
	th := DefaultThresholds()

	if got := th.WeeklyFor(RoleKitchen); got != 42 {
		t.Errorf("WeeklyFor(kitchen) = %v", got)
	}
	if got := th.WeeklyFor("Plonge"); got != 40.5 {
		t.Errorf("WeeklyFor(unknown) = %v, expected the mean 40.5", got)
	}
	if got := round2(th.MonthlyFor(RoleFloor)); got != 168.87 {
		t.Errorf("MonthlyFor(floor) = %v, expected 168.87", got)
	}
	if got := th.RoleOf(""); got != RoleKitchen {
		t.Errorf("RoleOf(\"\") = %q, expected the default role", got)
	}
	if got := th.RoleOf(RoleFloor); got != RoleFloor {
		t.Errorf("RoleOf(floor) = %q", got)
	}

	th.DefaultRole = ""
	if got := th.WeeklyFor(th.RoleOf("")); got != 40.5 {
		t.Errorf("unassigned weekly = %v, expected 40.5", got)
	}

	roles := th.Roles()
	if len(roles) != 2 || roles[0] != RoleKitchen || roles[1] != RoleFloor {
		t.Errorf("Roles() = %v", roles)
	}

	empty := Thresholds{}
	if empty.WeeklyFor("x") != 0 || empty.MonthlyFor("x") != 0 {
		t.Error("empty thresholds should yield zero limits")
	}
}
