// Package parser implements the time-clock sheet extraction pipeline.
package parser

import "github.com/ukaji3/pointage-go/pkg/pointage/models"

// Config holds the tunables of an extraction.
type Config struct {
	// MinDayColumns is the numeric-cell count that marks the day-header row.
	MinDayColumns int
	Labels        Labels
	Policy        PunchPolicy
	// Deduplicate removes exact duplicate records after sorting.
	Deduplicate bool
}

// DefaultConfig returns the stricter header threshold, the default labels,
// the lenient punch policy and deduplication on.
func DefaultConfig() Config {
	return Config{
		MinDayColumns: DefaultMinDayColumns,
		Labels:        DefaultLabels(),
		Policy:        LenientPunchPolicy(),
		Deduplicate:   true,
	}
}

// Extraction is everything derived from one grid.
type Extraction struct {
	Period    models.ReportingPeriod
	HeaderRow int
	Days      models.DayColumnMap
	Blocks    []models.EmployeeBlock
	Records   []models.DailyRecord
}

// Extract runs period, day-header, block and punch parsing over grid. Only
// structural failures are returned; a grid without blocks gives no records.
func Extract(grid models.Grid, cfg Config) (*Extraction, error) {
	period, err := LocatePeriod(grid)
	if err != nil {
		return nil, err
	}

	headerRow, days, err := LocateDayHeader(grid, cfg.MinDayColumns)
	if err != nil {
		return nil, err
	}

	blocks := SegmentBlocks(grid, headerRow+1, cfg.Labels)

	records, err := AssembleRecords(grid, period, days, blocks, cfg.Policy)
	if err != nil {
		return nil, err
	}

	SortRecords(records)
	if cfg.Deduplicate {
		records = Deduplicate(records)
	}
	if records == nil {
		records = []models.DailyRecord{}
	}

	return &Extraction{
		Period:    period,
		HeaderRow: headerRow,
		Days:      days,
		Blocks:    blocks,
		Records:   records,
	}, nil
}
