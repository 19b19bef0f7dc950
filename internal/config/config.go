// Package config defines process configuration and benchmark values.
//
// Conventions:
// - Defaults live in New; Load layers file and env on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

import "context"

// Config contains process configuration for report generation.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr optionally exposes prometheus metrics, e.g. ":9090".
	// Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`

	// ReportWorkers bounds concurrent per-player pipelines in team mode.
	ReportWorkers int `koanf:"report_workers"`

	// ClutchWindowSeconds bounds the clutch subset inside the fourth period.
	ClutchWindowSeconds int `koanf:"clutch_window_seconds"`

	// Benchmark carries the static comparison values used for labeling.
	Benchmark Benchmark `koanf:"benchmark"`
}

// Benchmark holds league comparison values and labeling thresholds. It is
// supplied as static configuration and never recomputed from data.
type Benchmark struct {
	// League-average percentages used only for labeling.
	LeagueFgPct     float64 `koanf:"league_fg_pct"`
	LeagueTwoPct    float64 `koanf:"league_two_pct"`
	LeagueThreePct  float64 `koanf:"league_three_pct"`
	LeagueClutchPct float64 `koanf:"league_clutch_pct"`

	// MinClutchSample suppresses above/below labels on thin clutch samples.
	MinClutchSample int `koanf:"min_clutch_sample"`

	// Volume tier thresholds on overall attempt counts.
	HighVolumeSample     int `koanf:"high_volume_sample"`
	ModerateVolumeSample int `koanf:"moderate_volume_sample"`

	// QuarterVarianceThreshold is how many points below overall FG% a
	// quarter must fall before the consistency rule fires.
	QuarterVarianceThreshold float64 `koanf:"quarter_variance_threshold"`

	// Clutch delta thresholds around overall FG%: below -UrgentDelta is
	// urgent, above +StrengthDelta is a strength, between is neutral.
	ClutchUrgentDelta   float64 `koanf:"clutch_urgent_delta"`
	ClutchStrengthDelta float64 `koanf:"clutch_strength_delta"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:            "info",
		MetricsAddr:         "",
		ReportWorkers:       4,
		ClutchWindowSeconds: 300,
		Benchmark: Benchmark{
			LeagueFgPct:              44.0,
			LeagueTwoPct:             48.5,
			LeagueThreePct:           35.0,
			LeagueClutchPct:          42.0,
			MinClutchSample:          10,
			HighVolumeSample:         300,
			ModerateVolumeSample:     150,
			QuarterVarianceThreshold: 5,
			ClutchUrgentDelta:        5,
			ClutchStrengthDelta:      3,
		},
	}
}
