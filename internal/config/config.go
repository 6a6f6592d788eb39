// Package config defines all configuration structures for the engine.  No I/O
// or parsing logic lives here, only plain data types and validation.
package config

import (
	"fmt"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// BalancerConfig holds coefficient-balancing tunables.
type BalancerConfig struct {
	// Tolerance is the per-element residual below which an equation counts
	// as balanced.
	Tolerance float64 `mapstructure:"tolerance"`

	// MaxDenominator bounds the rational approximation of null-space
	// coefficients before conversion to integers.
	MaxDenominator int64 `mapstructure:"max_denominator"`
}

// ClassifierConfig holds reaction-type classification tunables.
type ClassifierConfig struct {
	// RedoxThreshold is the minimum oxidation-state shift treated as
	// electron transfer.
	RedoxThreshold float64 `mapstructure:"redox_threshold"`
}

// MetricsConfig holds Prometheus exposition parameters.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
	Path    string `mapstructure:"path"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
	Output string `mapstructure:"output"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure.  Every component reads its
// settings from the relevant sub-struct.
type Config struct {
	Balancer   BalancerConfig   `mapstructure:"balancer"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Log        LogConfig        `mapstructure:"log"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.  It
// returns the first error encountered; callers should treat any error as
// fatal and refuse to start.
func (c *Config) Validate() error {
	if c.Balancer.Tolerance <= 0 {
		return fmt.Errorf("config: balancer.tolerance must be > 0, got %g", c.Balancer.Tolerance)
	}
	if c.Balancer.MaxDenominator < 1 {
		return fmt.Errorf("config: balancer.max_denominator must be ≥ 1, got %d", c.Balancer.MaxDenominator)
	}

	if c.Classifier.RedoxThreshold < 0 {
		return fmt.Errorf("config: classifier.redox_threshold must be ≥ 0, got %g", c.Classifier.RedoxThreshold)
	}

	if c.Metrics.Enabled {
		if c.Metrics.Addr == "" {
			return fmt.Errorf("config: metrics.addr is required when metrics are enabled")
		}
		if c.Metrics.Path == "" {
			return fmt.Errorf("config: metrics.path is required when metrics are enabled")
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}
