package output

import (
	"fmt"

	"github.com/ukaji3/pointage-go/pkg/pointage/models"
	"github.com/xuri/excelize/v2"
)

const (
	recordsSheet = "Records"
	summarySheet = "Summary"
)

var recordHeaders = []string{"emp_id", "name", "department", "date", "hours_worked", "role", "original_hours", "adjusted"}

var summaryHeaders = []string{
	"emp_id", "name", "department", "role", "total_hours", "threshold",
	"overtime_hours", "remaining_hours", "status", "daily_average", "days_worked",
	"rhythm", "projected_weekly_hours",
}

// SummaryWorkbook builds an xlsx file with one sheet of daily records and
// one sheet of employee summaries.
func SummaryWorkbook(records []models.AdjustedRecord, summaries []models.EmployeeSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", recordsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := writeTable(f, recordsSheet, recordHeaders, recordRows(records), style); err != nil {
		return nil, fmt.Errorf("write records: %w", err)
	}
	if err := writeTable(f, summarySheet, summaryHeaders, summaryRows(summaries), style); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func recordRows(records []models.AdjustedRecord) [][]any {
	rows := make([][]any, len(records))
	for i, rec := range records {
		rows[i] = []any{
			rec.EmployeeID, rec.Name, rec.Department, rec.Date.String(),
			rec.HoursWorked, rec.Role, rec.OriginalHours, rec.Adjusted,
		}
	}
	return rows
}

func summaryRows(summaries []models.EmployeeSummary) [][]any {
	rows := make([][]any, len(summaries))
	for i, s := range summaries {
		rhythm, projected := "", any(nil)
		if s.Rhythm != nil {
			rhythm, projected = string(s.Rhythm.Status), s.Rhythm.ProjectedWeeklyHours
		}
		rows[i] = []any{
			s.EmployeeID, s.Name, s.Department, s.Role, s.TotalHours, s.Threshold,
			s.OvertimeHours, s.RemainingHours, s.Status.String(), s.DailyAverage, s.DaysWorked,
			rhythm, projected,
		}
	}
	return rows
}

func writeTable(f *excelize.File, sheet string, headers []string, rows [][]any, headerStyle int) error {
	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 16)
}
