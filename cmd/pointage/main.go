// Package main provides the CLI entry point for pointage.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/pointage-go/internal/config"
)

var (
	configPath string
	logLevel   string

	logLevelVar = new(slog.LevelVar)
	logger      = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevelVar}))
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pointage",
		Short: "Compute daily worked hours from time-clock exports",
		Long: `pointage reads the attendance sheet of a time-clock export (.xlsx or .xls),
pairs the clock punches of every employee into daily worked hours and
classifies monthly totals against per-role overtime thresholds.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Configuration file (TOML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(newSheetsCmd(), newParseCmd(), newSummaryCmd())
	return rootCmd
}

// loadConfig reads the configuration and sets the log level, the flag
// taking precedence over the file.
func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	if err := setLogLevel(level, logLevelVar); err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	logger.Debug("configuration loaded", "path", configPath, "sheet", cfg.Parser.Sheet)
	return cfg, nil
}

func setLogLevel(level string, logLevel *slog.LevelVar) error {
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info", "":
		logLevel.Set(slog.LevelInfo)
	case "warn":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		return fmt.Errorf("the log level must be one of (debug, info, warn, error) received %s", level)
	}
	return nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("output written", "path", path, "bytes", len(data))
	return nil
}
