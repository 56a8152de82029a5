package parser

import (
	"errors"
	"testing"

	"github.com/bxcodec/faker/v4"
	"github.com/ukaji3/pointage-go/pkg/pointage/models"
)

// exportRows builds a sheet with a period line, a full day header starting at
// column 1 and one block per name. Every employee works 08:00-12:00 on day 1
// and day 2.
func exportRows(names ...string) [][]string {
	rows := []sheetRow{
		{0: "Rapport de présence"},
		{0: "Période :", 2: "2024/03/01 ~ 03/31"},
		headerRow(1, 31),
	}
	for i, name := range names {
		rows = append(rows,
			idRow(string(rune('A'+i))+"100", name, "Cuisine"),
			sheetRow{1: "08:00\n12:00", 2: "08:00\n12:00"},
		)
	}
	return gridRows(rows...)
}

func TestExtract(t *testing.T) {
	names := []string{faker.Name(), faker.Name()}
	grid := models.NewGrid(exportRows(names...))

	ext, err := Extract(grid, DefaultConfig())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if ext.Period.Year != 2024 || ext.Period.Month != 3 {
		t.Errorf("period = %+v, expected 2024-03", ext.Period)
	}
	if ext.HeaderRow != 2 {
		t.Errorf("header row = %d, expected 2", ext.HeaderRow)
	}
	if len(ext.Days) != 31 {
		t.Errorf("Expected 31 day columns, got %d", len(ext.Days))
	}
	if len(ext.Blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(ext.Blocks))
	}
	if len(ext.Records) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(ext.Records))
	}

	for i, rec := range ext.Records {
		if rec.Name != names[i/2] {
			t.Errorf("record %d name = %q, expected %q", i, rec.Name, names[i/2])
		}
		if rec.HoursWorked != 4 {
			t.Errorf("record %d hours = %v, expected 4", i, rec.HoursWorked)
		}
		if rec.Date.Month != 3 || rec.Date.Day != i%2+1 {
			t.Errorf("record %d date = %s", i, rec.Date)
		}
	}
}

func TestExtractDeduplicate(t *testing.T) {
	name := faker.Name()
	rows := exportRows(name)
	// The same block printed twice.
	rows = append(rows, rows[3], rows[4])
	grid := models.NewGrid(rows)

	cfg := DefaultConfig()
	ext, err := Extract(grid, cfg)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(ext.Records) != 2 {
		t.Errorf("Expected 2 records after dedup, got %d", len(ext.Records))
	}

	cfg.Deduplicate = false
	ext, err = Extract(grid, cfg)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(ext.Records) != 4 {
		t.Errorf("Expected 4 records without dedup, got %d", len(ext.Records))
	}
}

func TestExtractNoBlocks(t *testing.T) {
	grid := models.NewGrid(exportRows())

	ext, err := Extract(grid, DefaultConfig())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if ext.Records == nil || len(ext.Records) != 0 {
		t.Errorf("records = %#v, expected empty non-nil slice", ext.Records)
	}
}

func TestExtractStructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected error
	}{
		{
			name:     "no period",
			rows:     gridRows(headerRow(1, 31), idRow("1", "x", "y")),
			expected: ErrPeriodNotFound,
		},
		{
			name:     "no header",
			rows:     gridRows(sheetRow{0: "2024/03/01 ~ 03/31"}, headerRow(1, 5)),
			expected: ErrDayHeaderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(models.NewGrid(tt.rows), DefaultConfig())
			if !errors.Is(err, tt.expected) {
				t.Errorf("Extract error = %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestExtractFromWorkbook(t *testing.T) {
	path := writeWorkbook(t, "Enregistrement ", exportRows(faker.Name()))

	wb, err := OpenWorkbookFile(path)
	if err != nil {
		t.Fatalf("OpenWorkbookFile failed: %v", err)
	}
	defer wb.Close()

	grid, _, err := LoadGrid(wb, "Enregistrement ")
	if err != nil {
		t.Fatalf("LoadGrid failed: %v", err)
	}

	ext, err := Extract(grid, DefaultConfig())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(ext.Records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(ext.Records))
	}
}
