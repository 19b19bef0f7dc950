package config_test

import (
	"context"
	"os"
	"testing"

	config "github.com/okian/clutchreport/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.ReportWorkers, convey.ShouldEqual, 4)
				convey.So(cfg.ClutchWindowSeconds, convey.ShouldEqual, 300)
				convey.So(cfg.Benchmark.LeagueThreePct, convey.ShouldEqual, 35.0)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CLUTCH_LOG_LEVEL", "debug")
			_ = os.Setenv("CLUTCH_REPORT_WORKERS", "8")
			_ = os.Setenv("CLUTCH_CLUTCH_WINDOW_SECONDS", "120")
			_ = os.Setenv("CLUTCH_BENCHMARK__LEAGUE_FG_PCT", "45.5")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.ReportWorkers, convey.ShouldEqual, 8)
				convey.So(cfg.ClutchWindowSeconds, convey.ShouldEqual, 120)
				convey.So(cfg.Benchmark.LeagueFgPct, convey.ShouldEqual, 45.5)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			yamlContent := `
log_level: warn
report_workers: 2
benchmark:
  league_three_pct: 34.0
  min_clutch_sample: 15
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CLUTCH_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values are merged over defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.ReportWorkers, convey.ShouldEqual, 2)
				convey.So(cfg.Benchmark.LeagueThreePct, convey.ShouldEqual, 34.0)
				convey.So(cfg.Benchmark.MinClutchSample, convey.ShouldEqual, 15)
				// Untouched fields keep their defaults.
				convey.So(cfg.Benchmark.LeagueFgPct, convey.ShouldEqual, 44.0)
			})
		})

		convey.Convey("When loading config with both file and env", func() {
			tmpFile := createTempConfigFile("report_workers: 2\n")
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CLUTCH_CONFIG", tmpFile)
			_ = os.Setenv("CLUTCH_REPORT_WORKERS", "16")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.ReportWorkers, convey.ShouldEqual, 16)
			})
		})

		convey.Convey("When loading config with a non-existent file", func() {
			_ = os.Setenv("CLUTCH_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldWrap, config.ErrLoadConfig)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid worker count", func() {
			_ = os.Setenv("CLUTCH_REPORT_WORKERS", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"CLUTCH_CONFIG",
		"CLUTCH_LOG_LEVEL",
		"CLUTCH_REPORT_WORKERS",
		"CLUTCH_CLUTCH_WINDOW_SECONDS",
		"CLUTCH_BENCHMARK__LEAGUE_FG_PCT",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "clutch-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
