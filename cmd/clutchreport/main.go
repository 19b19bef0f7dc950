package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	render "github.com/okian/clutchreport/internal/adapters/render"
	service "github.com/okian/clutchreport/internal/app"
	"github.com/okian/clutchreport/internal/config"
	"github.com/okian/clutchreport/internal/domain/document"
	"github.com/okian/clutchreport/internal/domain/model"
	"github.com/okian/clutchreport/pkg/logger"
	"github.com/okian/clutchreport/pkg/metrics"
)

// Default CLI configuration constants.
const (
	defaultInputPath  = "data/shots.csv"
	defaultOutputDir  = "reports"
	readHeaderTimeout = 5 * time.Second
	outputDirPerm     = 0o755
	outputFilePerm    = 0o600
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		player     = flag.String("player", "", "Player name to report on (required unless -all)")
		input      = flag.String("input", defaultInputPath, "Path to the shot CSV")
		image      = flag.String("image", "", "Optional path to a pre-rendered shot chart")
		output     = flag.String("output", "", "Output path (default: reports/<player>.md)")
		allPlayers = flag.Bool("all", false, "Generate one report per player found in the input")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	level := cfg.LogLevel
	if *verbose {
		level = "debug"
	}
	if err := logger.SetLevelString(level); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", level), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if !*allPlayers && *player == "" {
		os.Stderr.WriteString("either -player or -all is required\n")
		flag.Usage()
		return 2
	}

	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, log, cfg.MetricsAddr)
	}

	svc := service.New(
		service.WithLogger(log),
		service.WithBenchmark(cfg.Benchmark),
		service.WithClutchWindow(cfg.ClutchWindowSeconds),
		service.WithWorkerCount(cfg.ReportWorkers),
	)

	events, err := loadEvents(ctx, svc, *input)
	if err != nil {
		log.Error(ctx, "failed to load input", logger.String("input", *input), logger.Error(err))
		return 1
	}

	renderer := render.NewMarkdown()

	if *allPlayers {
		return runTeam(ctx, log, svc, renderer, events, *output)
	}
	return runSingle(ctx, log, svc, renderer, events, *player, *image, *output)
}

func runSingle(ctx context.Context, log logger.Logger, svc *service.Service, renderer render.Renderer, events []model.ShotEvent, player, image, output string) int {
	report, err := svc.GenerateForPlayer(ctx, player, events, image)
	if err != nil {
		if !errors.Is(err, service.ErrNoEvents) {
			log.Error(ctx, "report generation failed", logger.Error(err))
			return 1
		}
		log.Warn(ctx, "no events found for player", logger.String("player", player))
	}

	path := reportPath(output, report.Player)
	if err := writeReport(ctx, renderer, report.Document, path); err != nil {
		metrics.RecordRenderError()
		log.Error(ctx, "render failed", logger.Error(err))
		return 1
	}
	log.Info(ctx, "report written", logger.String("path", path))
	return 0
}

func runTeam(ctx context.Context, log logger.Logger, svc *service.Service, renderer render.Renderer, events []model.ShotEvent, output string) int {
	reports, err := svc.GenerateAll(ctx, events)
	if err != nil {
		log.Error(ctx, "team report generation failed", logger.Error(err))
		return 1
	}
	outDir := output
	if outDir == "" {
		outDir = defaultOutputDir
	}
	for _, report := range reports {
		path := filepath.Join(outDir, fileName(report.Player))
		if err := writeReport(ctx, renderer, report.Document, path); err != nil {
			metrics.RecordRenderError()
			log.Error(ctx, "render failed", logger.String("player", report.Player), logger.Error(err))
			return 1
		}
		log.Info(ctx, "report written", logger.String("path", path))
	}
	return 0
}

// loadEvents opens the input with a scoped handle and loads all events.
func loadEvents(ctx context.Context, svc *service.Service, path string) (events []model.ShotEvent, err error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the operator's own flag
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return svc.Load(ctx, f)
}

func fileName(player string) string {
	name := strings.ReplaceAll(player, " ", "_")
	if name == "" {
		name = "report"
	}
	return name + ".md"
}

func reportPath(override, player string) string {
	if override != "" {
		return override
	}
	return filepath.Join(defaultOutputDir, fileName(player))
}

// writeReport renders the document tree to path with a scoped file handle.
func writeReport(ctx context.Context, renderer render.Renderer, doc *document.Section, path string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, outputDirPerm); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePerm) //nolint:gosec // operator-chosen path
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	start := time.Now()
	err = renderer.Render(ctx, f, doc)
	metrics.RecordStageLatency(metrics.StageRender, time.Since(start).Seconds())
	return err
}

func serveMetrics(ctx context.Context, log logger.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: readHeaderTimeout}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	log.Info(ctx, "metrics listener started", logger.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Warn(ctx, "metrics listener stopped", logger.Error(err))
	}
}
