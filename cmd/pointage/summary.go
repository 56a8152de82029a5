package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/pointage-go/pkg/pointage"
	"github.com/ukaji3/pointage-go/pkg/pointage/models"
	"github.com/ukaji3/pointage-go/pkg/pointage/output"
	"github.com/ukaji3/pointage-go/pkg/pointage/overlay"
	"github.com/ukaji3/pointage-go/pkg/pointage/status"
)

// summaryReport is the JSON document of the summary command.
type summaryReport struct {
	SheetName   string                   `json:"sheet_name"`
	Period      models.ReportingPeriod   `json:"period"`
	Month       int                      `json:"month"`
	AllMonths   bool                     `json:"all_months"`
	Available   []int                    `json:"available_months"`
	AlertMargin float64                  `json:"alert_margin"`
	Employees   []models.EmployeeSummary `json:"employees"`
	Changes     []overlay.Change         `json:"changes,omitempty"`
	Records     []models.AdjustedRecord  `json:"records"`
}

func newSummaryCmd() *cobra.Command {
	var (
		flags       parseFlags
		month       int
		allIfEmpty  bool
		overlayPath string
		format      string
		outputPath  string
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "summary [input.xlsx]",
		Short: "Summarize monthly hours and overtime status per employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("invalid month: %d (must be 1-12, or 0 for the sheet's month)", month)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			result, err := pointage.ParseFile(inputPath, flags.options(cfg))
			if err != nil {
				return err
			}

			if month == 0 {
				month = result.Period.Month
			}
			filtered, fallback := status.FilterMonth(result.Records, time.Month(month), allIfEmpty)
			if fallback {
				logger.Warn("no records for the selected month, using all records", "month", month)
			} else if len(filtered) == 0 {
				logger.Warn("no records for the selected month", "month", month,
					"available", status.AvailableMonths(result.Records))
			}

			ov := overlay.New()
			if overlayPath != "" {
				ov, err = overlay.LoadFile(overlayPath)
				if err != nil {
					return err
				}
			}
			adjusted := ov.Apply(filtered)

			th := cfg.StatusThresholds()
			report := summaryReport{
				SheetName:   result.SheetName,
				Period:      result.Period,
				Month:       month,
				AllMonths:   fallback,
				AlertMargin: th.AlertMargin,
				Employees:   status.Summarize(adjusted, th),
				Changes:     overlay.Changes(adjusted),
				Records:     adjusted,
			}
			for _, m := range status.AvailableMonths(result.Records) {
				report.Available = append(report.Available, int(m))
			}

			var data []byte
			switch format {
			case "json":
				data, err = output.ToJSON(report, pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				data = append(data, '\n')
			case "xlsx":
				if outputPath == "" {
					return fmt.Errorf("--output is required for xlsx format")
				}
				data, err = output.SummaryWorkbook(report.Records, report.Employees)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
			default:
				return fmt.Errorf("invalid format: %s (must be json or xlsx)", format)
			}

			return writeOutput(outputPath, data)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&month, "month", 0, "Month to summarize, 1-12 (default: the sheet's reporting month)")
	cmd.Flags().BoolVar(&allIfEmpty, "all-if-empty", false, "Use all records when the month has none")
	cmd.Flags().StringVar(&overlayPath, "overlay", "", "YAML file with role assignments and hour overrides")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, xlsx")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}
