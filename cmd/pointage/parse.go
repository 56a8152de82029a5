package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/pointage-go/internal/config"
	"github.com/ukaji3/pointage-go/pkg/pointage"
	"github.com/ukaji3/pointage-go/pkg/pointage/output"
)

// parseFlags are shared by parse and summary.
type parseFlags struct {
	sheet         string
	minDayColumns int
	noDedupe      bool
	strict        bool
}

func (f *parseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Sheet to parse (default from config)")
	cmd.Flags().IntVar(&f.minDayColumns, "min-day-columns", 0, "Numeric cells needed to detect the day-header row (default from config; lower values risk false matches)")
	cmd.Flags().BoolVar(&f.noDedupe, "no-dedupe", false, "Keep duplicate records")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Fail on malformed punch tokens instead of dropping them")
}

// options merges the flags over the configuration.
func (f *parseFlags) options(cfg *config.AppConfig) pointage.Options {
	opts := cfg.Options()
	if f.sheet != "" {
		opts.SheetName = f.sheet
	}
	if f.minDayColumns > 0 {
		opts.MinDayColumns = f.minDayColumns
	}
	if f.noDedupe {
		dedupe := false
		opts.Deduplicate = &dedupe
	}
	if f.strict {
		opts.Strict = true
	}
	opts.Logger = logger
	return opts
}

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			sheets, err := pointage.ListSheets(args[0])
			if err != nil {
				return err
			}
			for _, name := range sheets {
				fmt.Fprintf(cmd.OutOrStdout(), "%q\n", name)
			}
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	var (
		flags      parseFlags
		format     string
		outputPath string
		pretty     bool
		bom        bool
	)

	cmd := &cobra.Command{
		Use:   "parse [input.xlsx]",
		Short: "Extract daily worked hours per employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]

			// Validate input file exists
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			result, err := pointage.ParseFile(inputPath, flags.options(cfg))
			if err != nil {
				return err
			}
			if len(result.Records) == 0 {
				logger.Warn("no records found", "sheet", result.SheetName)
			}

			var data []byte
			switch format {
			case "csv":
				var buf bytes.Buffer
				if err := output.WriteCSV(&buf, result.Records, output.CSVOptions{BOM: bom}); err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				data = buf.Bytes()
			case "json":
				data, err = output.ToJSON(result, pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				data = append(data, '\n')
			default:
				return fmt.Errorf("invalid format: %s (must be csv or json)", format)
			}

			return writeOutput(outputPath, data)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv, json")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&bom, "bom", false, "Prefix CSV output with a UTF-8 byte order mark")
	return cmd
}
