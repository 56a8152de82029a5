// Package overlay applies manual corrections and role assignments on top of
// parsed records. Parsed records are never mutated.
package overlay

import (
	"fmt"
	"math"
	"sort"

	"github.com/ukaji3/pointage-go/pkg/pointage/models"
)

// MaxDailyHours bounds a manual adjustment.
const MaxDailyHours = 24.0

// tolerance below which an adjustment equals the parsed value.
const tolerance = 0.01

// Key identifies the record an adjustment patches.
type Key struct {
	EmployeeID string
	Date       models.Date
}

// Overlay holds role assignments per employee and hour overrides per
// (employee, date).
type Overlay struct {
	Roles       map[string]string
	Adjustments map[Key]float64
}

// New returns an empty Overlay.
func New() *Overlay {
	return &Overlay{
		Roles:       make(map[string]string),
		Adjustments: make(map[Key]float64),
	}
}

// AssignRole sets the role of an employee. An empty role clears it.
func (o *Overlay) AssignRole(employeeID, role string) {
	if role == "" {
		delete(o.Roles, employeeID)
		return
	}
	o.Roles[employeeID] = role
}

// SetHours overrides the hours of one employee-day.
func (o *Overlay) SetHours(employeeID string, date models.Date, hours float64) error {
	if math.IsNaN(hours) || hours < 0 || hours > MaxDailyHours {
		return fmt.Errorf("hours for %s on %s must be between 0 and %g, got %g", employeeID, date, MaxDailyHours, hours)
	}
	o.Adjustments[Key{EmployeeID: employeeID, Date: date}] = hours
	return nil
}

// ClearHours removes the override of one employee-day.
func (o *Overlay) ClearHours(employeeID string, date models.Date) {
	delete(o.Adjustments, Key{EmployeeID: employeeID, Date: date})
}

// ResetEmployee removes every override of an employee.
func (o *Overlay) ResetEmployee(employeeID string) {
	for key := range o.Adjustments {
		if key.EmployeeID == employeeID {
			delete(o.Adjustments, key)
		}
	}
}

// Apply returns the records with roles attached and overrides applied.
// Overrides without a matching record are ignored, as are overrides within
// 0.01h of the parsed value.
func (o *Overlay) Apply(records []models.DailyRecord) []models.AdjustedRecord {
	out := make([]models.AdjustedRecord, len(records))
	for i, rec := range records {
		adjusted := models.AdjustedRecord{
			DailyRecord:   rec,
			OriginalHours: rec.HoursWorked,
		}
		if o != nil {
			adjusted.Role = o.Roles[rec.EmployeeID]
			if hours, ok := o.Adjustments[Key{EmployeeID: rec.EmployeeID, Date: rec.Date}]; ok &&
				math.Abs(hours-rec.HoursWorked) > tolerance {
				adjusted.HoursWorked = hours
				adjusted.Adjusted = true
			}
		}
		out[i] = adjusted
	}
	return out
}

// Change describes one applied override.
type Change struct {
	EmployeeID    string      `json:"emp_id"`
	Name          string      `json:"name"`
	Date          models.Date `json:"date"`
	OriginalHours float64     `json:"original_hours"`
	AdjustedHours float64     `json:"adjusted_hours"`
	Difference    float64     `json:"difference"`
}

// Changes lists the overrides that took effect, by employee then date.
func Changes(records []models.AdjustedRecord) []Change {
	var changes []Change
	for _, rec := range records {
		if !rec.Adjusted {
			continue
		}
		changes = append(changes, Change{
			EmployeeID:    rec.EmployeeID,
			Name:          rec.Name,
			Date:          rec.Date,
			OriginalHours: rec.OriginalHours,
			AdjustedHours: rec.HoursWorked,
			Difference:    math.Round((rec.HoursWorked-rec.OriginalHours)*100) / 100,
		})
	}
	sort.SliceStable(changes, func(i, j int) bool {
		if changes[i].EmployeeID != changes[j].EmployeeID {
			return changes[i].EmployeeID < changes[j].EmployeeID
		}
		return changes[i].Date.Before(changes[j].Date)
	})
	return changes
}
