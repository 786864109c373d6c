// Package config loads the CLI configuration file (mm.yaml).
//
// The file carries every overridable parameter of report generation:
// the neutral default priority, the action weights, the recommendation
// thresholds, and the default output format and period. Absent fields
// keep their documented defaults, so a config file only needs the values
// it changes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meaningfulmetrics/meaningfulmetrics/internal/report"
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/schema"
	"github.com/meaningfulmetrics/meaningfulmetrics/internal/scoring"
)

// Config is the top-level configuration tree. Fields map 1:1 to mm.yaml.
type Config struct {
	// DefaultPriority substitutes for domains without a declared
	// priority. Must be in [0, 1].
	DefaultPriority float64 `yaml:"default_priority"`

	// Period is the default reporting period tag: daily | weekly.
	Period string `yaml:"period"`

	// Format is the default output format: text | markdown | json.
	Format string `yaml:"format"`

	// Weights configure the actionability score.
	Weights Weights `yaml:"weights"`

	// Thresholds drive recommendation generation.
	Thresholds scoring.Thresholds `yaml:"thresholds"`
}

// Weights mirrors schema.ActionWeights with YAML keys matching the wire
// field names.
type Weights struct {
	Bookmarked float64 `yaml:"bookmarked_weight"`
	Shared     float64 `yaml:"shared_weight"`
	Applied    float64 `yaml:"applied_weight"`
}

// Default returns the documented defaults.
func Default() *Config {
	w := schema.DefaultActionWeights()
	return &Config{
		DefaultPriority: 0.5,
		Period:          string(schema.PeriodDaily),
		Format:          string(report.FormatText),
		Weights: Weights{
			Bookmarked: w.Bookmarked,
			Shared:     w.Shared,
			Applied:    w.Applied,
		},
		Thresholds: scoring.DefaultThresholds(),
	}
}

// Load reads the YAML file at path, layered over the defaults, and
// validates the result. An empty path returns the defaults unchanged; a
// named file that does not exist is an error, since the caller asked for
// it explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and enums.
func (c *Config) Validate() error {
	if c.DefaultPriority < 0 || c.DefaultPriority > 1 {
		return fmt.Errorf("default_priority must be between 0.0 and 1.0, got %v", c.DefaultPriority)
	}
	if err := schema.Period(c.Period).Validate(); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	if err := c.ActionWeights().Validate(); err != nil {
		return err
	}

	t := c.Thresholds
	if t.MaintainAlignment < 0 || t.MaintainAlignment > 100 {
		return fmt.Errorf("thresholds.maintain_alignment must be between 0 and 100, got %v", t.MaintainAlignment)
	}
	if t.LowAlignment < 0 || t.LowAlignment > 100 {
		return fmt.Errorf("thresholds.low_alignment must be between 0 and 100, got %v", t.LowAlignment)
	}
	if t.LowAlignment > t.MaintainAlignment {
		return fmt.Errorf("thresholds.low_alignment (%v) must not exceed thresholds.maintain_alignment (%v)", t.LowAlignment, t.MaintainAlignment)
	}
	if t.LowPriority < 0 || t.LowPriority > 1 {
		return fmt.Errorf("thresholds.low_priority must be between 0.0 and 1.0, got %v", t.LowPriority)
	}
	if t.LowPriorityHours < 0 {
		return fmt.Errorf("thresholds.low_priority_hours must be non-negative, got %v", t.LowPriorityHours)
	}
	if t.TargetShortfallRatio < 0 || t.TargetShortfallRatio > 1 {
		return fmt.Errorf("thresholds.target_shortfall_ratio must be between 0.0 and 1.0, got %v", t.TargetShortfallRatio)
	}
	return nil
}

// ActionWeights converts the YAML weights into the schema type.
func (c *Config) ActionWeights() schema.ActionWeights {
	return schema.ActionWeights{
		Bookmarked: c.Weights.Bookmarked,
		Shared:     c.Weights.Shared,
		Applied:    c.Weights.Applied,
	}
}

// Scoring converts the configuration into a scoring.Config.
func (c *Config) Scoring() scoring.Config {
	return scoring.Config{
		DefaultPriority: c.DefaultPriority,
		Weights:         c.ActionWeights(),
		Thresholds:      c.Thresholds,
	}
}
