package status

import "sort"

// Role names used by the default configuration.
const (
	RoleKitchen = "Cuisine"
	RoleFloor   = "Salle"
)

// DefaultWeeksPerMonth converts weekly thresholds to monthly ones.
const DefaultWeeksPerMonth = 4.33

// Thresholds holds the per-role hour limits. It is read-only during a computation.
type Thresholds struct {
	// Weekly maps a role to its weekly hour limit.
	Weekly map[string]float64
	// WeeksPerMonth scales weekly limits to monthly ones.
	WeeksPerMonth float64
	// AlertMargin is the number of hours below the limit that raises an alert.
	AlertMargin float64
	// DefaultRole is given to employees without an assignment. When empty,
	// they are measured against the mean of all role limits.
	DefaultRole string
}

// DefaultThresholds returns 42h/week for the kitchen, 39h/week for the
// floor, and a 10 hour alert margin.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Weekly: map[string]float64{
			RoleKitchen: 42,
			RoleFloor:   39,
		},
		WeeksPerMonth: DefaultWeeksPerMonth,
		AlertMargin:   10,
		DefaultRole:   RoleKitchen,
	}
}

// RoleOf returns the effective role for an assigned role ("" if unassigned).
func (t Thresholds) RoleOf(assigned string) string {
	if assigned != "" {
		return assigned
	}
	return t.DefaultRole
}

// WeeklyFor returns the weekly limit of role. Unknown roles get the mean of
// the configured limits.
func (t Thresholds) WeeklyFor(role string) float64 {
	if v, ok := t.Weekly[role]; ok {
		return v
	}
	return t.meanWeekly()
}

// MonthlyFor returns the monthly limit of role.
func (t Thresholds) MonthlyFor(role string) float64 {
	return t.WeeklyFor(role) * t.weeksPerMonth()
}

// Roles returns the configured roles in name order.
func (t Thresholds) Roles() []string {
	roles := make([]string, 0, len(t.Weekly))
	for role := range t.Weekly {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

func (t Thresholds) weeksPerMonth() float64 {
	if t.WeeksPerMonth <= 0 {
		return DefaultWeeksPerMonth
	}
	return t.WeeksPerMonth
}

func (t Thresholds) meanWeekly() float64 {
	if len(t.Weekly) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range t.Weekly {
		sum += v
	}
	return sum / float64(len(t.Weekly))
}
