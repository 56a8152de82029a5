// Package config loads the pointage CLI configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/ukaji3/pointage-go/pkg/pointage"
	"github.com/ukaji3/pointage-go/pkg/pointage/parser"
	"github.com/ukaji3/pointage-go/pkg/pointage/status"
)

// DefaultPath is where the CLI looks for its configuration.
const DefaultPath = "pointage.toml"

// AppConfig is the whole configuration file.
type AppConfig struct {
	Parser     ParserConfig     `toml:"parser"`
	Thresholds ThresholdsConfig `toml:"thresholds"`
	Log        LogConfig        `toml:"log"`
}

// ParserConfig controls sheet extraction.
type ParserConfig struct {
	Sheet         string       `toml:"sheet"`
	MinDayColumns int          `toml:"min_day_columns"`
	Deduplicate   bool         `toml:"deduplicate"`
	Strict        bool         `toml:"strict"`
	Labels        LabelsConfig `toml:"labels"`
}

// LabelsConfig lists block label prefixes.
type LabelsConfig struct {
	ID          []string `toml:"id"`
	Name        []string `toml:"name"`
	Department  []string `toml:"department"`
	ValueOffset int      `toml:"value_offset"`
}

// ThresholdsConfig holds the overtime limits.
type ThresholdsConfig struct {
	AlertMargin   float64            `toml:"alert_margin"`
	WeeksPerMonth float64            `toml:"weeks_per_month"`
	DefaultRole   string             `toml:"default_role"`
	Weekly        map[string]float64 `toml:"weekly"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *AppConfig {
	labels := parser.DefaultLabels()
	th := status.DefaultThresholds()
	return &AppConfig{
		Parser: ParserConfig{
			Sheet:         pointage.DefaultSheetName,
			MinDayColumns: parser.DefaultMinDayColumns,
			Deduplicate:   true,
			Strict:        false,
			Labels: LabelsConfig{
				ID:          labels.ID,
				Name:        labels.Name,
				Department:  labels.Department,
				ValueOffset: labels.ValueOffset,
			},
		},
		Thresholds: ThresholdsConfig{
			AlertMargin:   th.AlertMargin,
			WeeksPerMonth: th.WeeksPerMonth,
			DefaultRole:   th.DefaultRole,
			Weekly:        th.Weekly,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults. Environment variables POINTAGE_SHEET and POINTAGE_LOG_LEVEL
// override the file.
func LoadConfig(path string) (*AppConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		// A [thresholds.weekly] table replaces the default roles instead of merging.
		defaults := config.Thresholds.Weekly
		config.Thresholds.Weekly = nil
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
		if config.Thresholds.Weekly == nil {
			config.Thresholds.Weekly = defaults
		}
	}

	if v := os.Getenv("POINTAGE_SHEET"); v != "" {
		config.Parser.Sheet = v
	}
	if v := os.Getenv("POINTAGE_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}

	return config, nil
}

// SaveConfig writes config to path.
func SaveConfig(config *AppConfig, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options converts the parser section to parse options.
func (c *AppConfig) Options() pointage.Options {
	dedupe := c.Parser.Deduplicate
	return pointage.Options{
		SheetName:     c.Parser.Sheet,
		MinDayColumns: c.Parser.MinDayColumns,
		Labels: &parser.Labels{
			ID:          c.Parser.Labels.ID,
			Name:        c.Parser.Labels.Name,
			Department:  c.Parser.Labels.Department,
			ValueOffset: c.Parser.Labels.ValueOffset,
		},
		Strict:      c.Parser.Strict,
		Deduplicate: &dedupe,
	}
}

// StatusThresholds converts the thresholds section.
func (c *AppConfig) StatusThresholds() status.Thresholds {
	weekly := make(map[string]float64, len(c.Thresholds.Weekly))
	for role, hours := range c.Thresholds.Weekly {
		weekly[role] = hours
	}
	return status.Thresholds{
		Weekly:        weekly,
		WeeksPerMonth: c.Thresholds.WeeksPerMonth,
		AlertMargin:   c.Thresholds.AlertMargin,
		DefaultRole:   c.Thresholds.DefaultRole,
	}
}
