package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the structural failures of a parse. The typed errors
// below match them with errors.Is.
var (
	// ErrUnreadableWorkbook indicates the input is not a decodable spreadsheet.
	ErrUnreadableWorkbook = errors.New("unreadable workbook")
	// ErrSheetNotFound indicates the requested sheet is absent.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrPeriodNotFound indicates no cell carries a "YYYY/MM/DD ~ MM/DD" range.
	ErrPeriodNotFound = errors.New("reporting period not found")
	// ErrDayHeaderNotFound indicates no row enumerates the days of the month.
	ErrDayHeaderNotFound = errors.New("day header row not found")
	// ErrInvalidPunch is only returned under a strict PunchPolicy.
	ErrInvalidPunch = errors.New("invalid punch")
)

// UnreadableWorkbookError wraps the decoder failure.
type UnreadableWorkbookError struct {
	Err error
}

func (e *UnreadableWorkbookError) Error() string {
	return fmt.Sprintf("workbook cannot be decoded as xlsx or xls: %v", e.Err)
}

func (e *UnreadableWorkbookError) Unwrap() error {
	return e.Err
}

func (e *UnreadableWorkbookError) Is(target error) bool {
	return target == ErrUnreadableWorkbook
}

// SheetNotFoundError names the missing sheet and the sheets that exist.
type SheetNotFoundError struct {
	Sheet     string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	quoted := make([]string, len(e.Available))
	for i, name := range e.Available {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("sheet %q not found (available: %s)", e.Sheet, strings.Join(quoted, ", "))
}

func (e *SheetNotFoundError) Is(target error) bool {
	return target == ErrSheetNotFound
}

// PeriodNotFoundError reports how much of the grid was scanned.
type PeriodNotFoundError struct {
	Rows int
}

func (e *PeriodNotFoundError) Error() string {
	return fmt.Sprintf("no cell in %d rows matches the period pattern \"YYYY/MM/DD ~ MM/DD\"", e.Rows)
}

func (e *PeriodNotFoundError) Is(target error) bool {
	return target == ErrPeriodNotFound
}

// DayHeaderNotFoundError reports the closest candidate row, to help fix the sheet.
type DayHeaderNotFoundError struct {
	MinDayColumns int
	// BestRow is the row with the most numeric cells, -1 for an empty grid.
	BestRow   int
	BestCount int
}

func (e *DayHeaderNotFoundError) Error() string {
	if e.BestRow < 0 {
		return fmt.Sprintf("no row has at least %d numeric day cells (grid is empty)", e.MinDayColumns)
	}
	return fmt.Sprintf("no row has at least %d numeric day cells (best: row %d with %d)",
		e.MinDayColumns, e.BestRow+1, e.BestCount)
}

func (e *DayHeaderNotFoundError) Is(target error) bool {
	return target == ErrDayHeaderNotFound
}

// PunchError locates a punch cell rejected by a strict policy.
type PunchError struct {
	Row    int
	Col    int
	Token  string
	Reason string
}

func (e *PunchError) Error() string {
	return fmt.Sprintf("punch cell at row %d, column %d: %s %q", e.Row+1, e.Col+1, e.Reason, e.Token)
}

func (e *PunchError) Is(target error) bool {
	return target == ErrInvalidPunch
}
