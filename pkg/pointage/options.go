// Package pointage extracts daily worked hours from time-clock workbook exports.
package pointage

import (
	"log/slog"

	"github.com/ukaji3/pointage-go/pkg/pointage/parser"
)

// DefaultSheetName is the tab name used by the clock export, trailing space included.
const DefaultSheetName = "Enregistrement "

// Options configures parsing behavior.
type Options struct {
	// SheetName is the sheet to parse. Defaults to DefaultSheetName.
	SheetName string
	// MinDayColumns is the numeric-cell count that marks the day-header row.
	// Defaults to parser.DefaultMinDayColumns (10); values as low as 5 accept
	// shorter periods at the risk of a false header match.
	MinDayColumns int
	// Labels overrides the block label prefixes. Nil fields fall back to
	// parser.DefaultLabels.
	Labels *parser.Labels
	// Strict fails on malformed punch tokens instead of dropping them.
	Strict bool
	// Deduplicate removes exact duplicate records.
	// If nil, defaults to true.
	Deduplicate *bool
	// Logger receives a summary line per parse and, at debug level, one line
	// per dropped token or cell. Nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns default parsing options.
func DefaultOptions() Options {
	return Options{
		SheetName:     DefaultSheetName,
		MinDayColumns: parser.DefaultMinDayColumns,
	}
}

// ShouldDeduplicate returns whether to remove duplicate records.
func (o Options) ShouldDeduplicate() bool {
	if o.Deduplicate != nil {
		return *o.Deduplicate
	}
	return true
}

func (o Options) sheetName() string {
	if o.SheetName == "" {
		return DefaultSheetName
	}
	return o.SheetName
}

func (o Options) labels() parser.Labels {
	defaults := parser.DefaultLabels()
	if o.Labels == nil {
		return defaults
	}
	labels := *o.Labels
	if len(labels.ID) == 0 {
		labels.ID = defaults.ID
	}
	if len(labels.Name) == 0 {
		labels.Name = defaults.Name
	}
	if len(labels.Department) == 0 {
		labels.Department = defaults.Department
	}
	if labels.ValueOffset < 1 {
		labels.ValueOffset = defaults.ValueOffset
	}
	return labels
}

// parserConfig translates Options to the parser's Config.
func (o Options) parserConfig(sheet string) parser.Config {
	policy := parser.LenientPunchPolicy()
	if o.Strict {
		policy = parser.StrictPunchPolicy()
	}
	if o.Logger != nil {
		logger := o.Logger
		policy = policy.WithDropHook(func(d parser.Drop) {
			logger.Debug("dropped punch data",
				"sheet", sheet, "reason", string(d.Reason),
				"row", d.Row+1, "col", d.Col+1, "token", d.Token)
		})
	}

	minDays := o.MinDayColumns
	if minDays < 1 {
		minDays = parser.DefaultMinDayColumns
	}

	return parser.Config{
		MinDayColumns: minDays,
		Labels:        o.labels(),
		Policy:        policy,
		Deduplicate:   o.ShouldDeduplicate(),
	}
}
