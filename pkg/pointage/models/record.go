package models

// EmployeeBlock is one identifier row plus the punch row directly below it.
type EmployeeBlock struct {
	// EmployeeID is the value two cells after the identifier label ("" if absent).
	EmployeeID string `json:"emp_id"`
	// Name is the value two cells after the name label ("" if absent).
	Name string `json:"name"`
	// Department is the value two cells after the department label ("" if absent).
	Department string `json:"department"`
	// IDRow is the grid row holding the labels.
	IDRow int `json:"id_row"`
	// PunchRow is the grid row holding the day cells.
	PunchRow int `json:"punch_row"`
}

// DailyRecord is the worked time of one employee on one day.
type DailyRecord struct {
	EmployeeID string `json:"emp_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Date       Date   `json:"date"`
	// HoursWorked is rounded to two decimals.
	HoursWorked float64 `json:"hours_worked"`
}

// RecordKey identifies a record for deduplication.
type RecordKey struct {
	EmployeeID  string
	Date        Date
	HoursWorked float64
}

// Key returns the deduplication key of r.
func (r DailyRecord) Key() RecordKey {
	return RecordKey{EmployeeID: r.EmployeeID, Date: r.Date, HoursWorked: r.HoursWorked}
}

// AdjustedRecord is a DailyRecord after manual overrides and role assignment.
type AdjustedRecord struct {
	DailyRecord
	// Role is the assigned role, or "" when unassigned.
	Role string `json:"role"`
	// OriginalHours is the parsed value before any override.
	OriginalHours float64 `json:"original_hours"`
	// Adjusted is true when HoursWorked comes from a manual override.
	Adjusted bool `json:"adjusted"`
}

// ParseResult is the output of one workbook parse.
type ParseResult struct {
	// BookName is the workbook file name (no path), when known.
	BookName string `json:"book_name,omitempty"`
	// SheetName is the sheet that was parsed.
	SheetName string `json:"sheet_name"`
	// Period is the reporting period found on the sheet.
	Period ReportingPeriod `json:"period"`
	// HeaderRow is the grid row of the day-header.
	HeaderRow int `json:"header_row"`
	// DayColumns is the number of mapped day columns.
	DayColumns int `json:"day_columns"`
	// Blocks is the number of employee blocks found.
	Blocks int `json:"blocks"`
	// Records is ordered by employee id then date.
	Records []DailyRecord `json:"records"`
}
