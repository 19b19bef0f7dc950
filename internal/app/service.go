// Package service orchestrates the report pipeline: load, aggregate,
// recommend, build. Each per-player pipeline is a pure pass over its own
// event slice, so team mode fans out with no shared mutable state.
package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/okian/clutchreport/internal/config"
	"github.com/okian/clutchreport/internal/domain/document"
	"github.com/okian/clutchreport/internal/domain/loader"
	"github.com/okian/clutchreport/internal/domain/model"
	"github.com/okian/clutchreport/internal/domain/narrative"
	"github.com/okian/clutchreport/internal/domain/stats"
	"github.com/okian/clutchreport/pkg/logger"
	"github.com/okian/clutchreport/pkg/metrics"
)

// Default pipeline configuration constants.
const (
	defaultWorkerCount = 4
)

// Report bundles everything one pipeline run produces for a player.
type Report struct {
	Player   string
	Snapshot stats.Snapshot
	Blocks   []narrative.Block
	Document *document.Section
}

// Service runs report pipelines.
type Service struct {
	benchmark    config.Benchmark
	clutchWindow int
	workerCount  int

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithBenchmark sets the benchmark comparison values.
func WithBenchmark(bm config.Benchmark) Option {
	return func(s *Service) {
		s.benchmark = bm
	}
}

// WithClutchWindow sets the clutch window in seconds.
func WithClutchWindow(seconds int) Option {
	return func(s *Service) {
		if seconds > 0 {
			s.clutchWindow = seconds
		}
	}
}

// WithWorkerCount bounds concurrent per-player pipelines in team mode.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	ctx := context.Background()
	s := &Service{
		benchmark:    config.New(ctx).Benchmark,
		clutchWindow: stats.DefaultClutchWindowSeconds,
		workerCount:  defaultWorkerCount,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	return s
}

// Load reads shot events from r. Thin wrapper over the domain loader that
// records input-quality metrics.
func (s *Service) Load(ctx context.Context, r io.Reader) ([]model.ShotEvent, error) {
	start := time.Now()
	events, err := loader.Load(r, loader.WithRowDefaultHook(metrics.RecordRowDefaulted))
	metrics.RecordStageLatency(metrics.StageLoad, time.Since(start).Seconds())
	if err != nil {
		metrics.RecordParseFailure()
		return nil, fmt.Errorf("loading events: %w", err)
	}
	metrics.RecordEventsLoaded(len(events))
	s.logger.Debug(ctx, "events loaded", logger.Int("count", len(events)))
	return events, nil
}

// Generate runs one player's pipeline over events already scoped to that
// player. chartPath may be empty. Zero events is not fatal: the result is the
// all-zero report and the caller gets ErrNoEvents as a warning sentinel it
// may ignore.
func (s *Service) Generate(ctx context.Context, player string, events []model.ShotEvent, chartPath string) (*Report, error) {
	metrics.PipelineStarted()
	defer metrics.PipelineFinished()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline canceled: %w", err)
	}

	start := time.Now()
	snap := stats.Aggregate(events, stats.WithClutchWindow(s.clutchWindow))
	metrics.RecordStageLatency(metrics.StageAggregate, time.Since(start).Seconds())

	start = time.Now()
	blocks := narrative.Recommend(snap, s.benchmark)
	metrics.RecordStageLatency(metrics.StageRecommend, time.Since(start).Seconds())

	start = time.Now()
	doc := document.Build(player, snap, blocks, s.benchmark, chartPath)
	metrics.RecordStageLatency(metrics.StageBuild, time.Since(start).Seconds())

	metrics.RecordReportGenerated()
	s.logger.Info(ctx, "report generated",
		logger.String("player", player),
		logger.Int("events", len(events)),
		logger.Int("blocks", len(blocks)),
	)

	report := &Report{Player: player, Snapshot: snap, Blocks: blocks, Document: doc}
	if len(events) == 0 {
		s.logger.Warn(ctx, "no events for player; report is all zeros", logger.String("player", player))
		return report, ErrNoEvents
	}
	return report, nil
}

// GenerateForPlayer filters events down to one player and runs the pipeline.
func (s *Service) GenerateForPlayer(ctx context.Context, player string, events []model.ShotEvent, chartPath string) (*Report, error) {
	scoped := make([]model.ShotEvent, 0, len(events))
	for _, e := range events {
		if e.PlayerName == player || e.PlayerName == "" {
			scoped = append(scoped, e)
		}
	}
	return s.Generate(ctx, player, scoped, chartPath)
}

// GenerateAll groups events by player and runs one independent pipeline per
// player with a bounded fan-out. Reports come back sorted by player name so
// the output order is deterministic regardless of scheduling.
func (s *Service) GenerateAll(ctx context.Context, events []model.ShotEvent) ([]*Report, error) {
	byPlayer := make(map[string][]model.ShotEvent)
	for _, e := range events {
		byPlayer[e.PlayerName] = append(byPlayer[e.PlayerName], e)
	}

	players := make([]string, 0, len(byPlayer))
	for p := range byPlayer {
		players = append(players, p)
	}
	sort.Strings(players)

	type result struct {
		index  int
		report *Report
		err    error
	}

	sem := make(chan struct{}, s.workerCount)
	results := make(chan result, len(players))
	var wg sync.WaitGroup

	for i, player := range players {
		wg.Add(1)
		go func(i int, player string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results <- result{index: i, err: ctx.Err()}
				return
			}
			report, err := s.Generate(ctx, player, byPlayer[player], "")
			results <- result{index: i, report: report, err: err}
		}(i, player)
	}

	wg.Wait()
	close(results)

	reports := make([]*Report, len(players))
	for res := range results {
		if res.err != nil && res.report == nil {
			metrics.RecordReportError()
			return nil, fmt.Errorf("generating report for %s: %w", players[res.index], res.err)
		}
		reports[res.index] = res.report
	}
	return reports, nil
}
