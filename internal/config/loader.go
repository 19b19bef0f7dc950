package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if CLUTCH_CONFIG is set
//  3. env (prefix CLUTCH_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("CLUTCH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: CLUTCH_LOG_LEVEL, CLUTCH_BENCHMARK__LEAGUE_FG_PCT, ...
	// Double underscore separates nesting levels so single underscores survive
	// inside key names.
	envProvider := env.Provider("CLUTCH_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "clutch_")
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.ReportWorkers < 1 {
		return fmt.Errorf("%w: report_workers must be positive", ErrInvalidConfig)
	}
	if cfg.ClutchWindowSeconds < 1 {
		return fmt.Errorf("%w: clutch_window_seconds must be positive", ErrInvalidConfig)
	}
	if cfg.Benchmark.ModerateVolumeSample > cfg.Benchmark.HighVolumeSample {
		return fmt.Errorf("%w: moderate_volume_sample exceeds high_volume_sample", ErrInvalidConfig)
	}
	return nil
}
