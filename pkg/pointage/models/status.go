package models

import "fmt"

// Status classifies total hours against a threshold.
type Status int

const (
	StatusNormal Status = iota
	StatusAlert
	StatusOverrun
)

var statusNames = map[Status]string{
	StatusNormal:  "Normal",
	StatusAlert:   "Alert",
	StatusOverrun: "Overrun",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}

// RhythmStatus classifies a projected weekly pace.
type RhythmStatus string

const (
	RhythmNormal       RhythmStatus = "RYTHME_NORMAL"
	RhythmSurveillance RhythmStatus = "SURVEILLANCE"
	RhythmOverrunRisk  RhythmStatus = "RISQUE_DEPASSEMENT"
)

// WeeklyRhythm is a 7-day projection from an employee's latest daily records.
type WeeklyRhythm struct {
	Status RhythmStatus `json:"statut"`
	// ProjectedWeeklyHours is DailyAverage * 7.
	ProjectedWeeklyHours float64 `json:"projected_weekly_hours"`
	// DailyAverage is the mean of the window's hours.
	DailyAverage float64 `json:"daily_average"`
	// Days is the number of records in the window (3-7).
	Days        int  `json:"days"`
	WindowStart Date `json:"window_start"`
	WindowEnd   Date `json:"window_end"`
}

// EmployeeSummary aggregates one employee's records over the selected month.
type EmployeeSummary struct {
	EmployeeID string  `json:"emp_id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
	TotalHours float64 `json:"total_hours"`
	// DailyAverage is TotalHours / DaysWorked.
	DailyAverage float64 `json:"daily_average"`
	DaysWorked   int     `json:"days_worked"`
	// Threshold is the monthly limit for Role.
	Threshold      float64       `json:"threshold"`
	OvertimeHours  float64       `json:"overtime_hours"`
	RemainingHours float64       `json:"remaining_hours"`
	Status         Status        `json:"status"`
	Rhythm         *WeeklyRhythm `json:"rhythm,omitempty"`
}
