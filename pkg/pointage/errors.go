package pointage

import (
	"fmt"

	"github.com/ukaji3/pointage-go/pkg/pointage/parser"
)

// Structural failures. Use errors.Is against these, or errors.As with the
// parser's typed errors for details.
var (
	ErrUnreadableWorkbook = parser.ErrUnreadableWorkbook
	ErrSheetNotFound      = parser.ErrSheetNotFound
	ErrPeriodNotFound     = parser.ErrPeriodNotFound
	ErrDayHeaderNotFound  = parser.ErrDayHeaderNotFound
	ErrInvalidPunch       = parser.ErrInvalidPunch
)

// Stage names the pipeline step that failed.
type Stage string

const (
	StageOpen  Stage = "open"
	StageLoad  Stage = "load"
	StageParse Stage = "parse"
)

// ParseError represents a fatal error while parsing a sheet.
type ParseError struct {
	SheetName string
	Stage     Stage
	Err       error
}

func (e *ParseError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("parse error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("parse error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(sheetName string, stage Stage, err error) *ParseError {
	return &ParseError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
