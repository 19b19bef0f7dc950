// Package metrics provides Prometheus metrics for the report pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pipeline stage labels for latency tracking.
const (
	StageLoad      = "load"
	StageAggregate = "aggregate"
	StageRecommend = "recommend"
	StageBuild     = "build"
	StageRender    = "render"
)

// Manager manages all Prometheus metrics for the report pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Input quality metrics
	eventsLoaded  prometheus.Counter
	rowsDefaulted prometheus.Counter
	parseFailures prometheus.Counter

	// Pipeline throughput metrics
	reportsGenerated prometheus.Counter
	reportErrors     prometheus.Counter
	renderErrors     prometheus.Counter
	stageLatency     *prometheus.HistogramVec

	// Concurrency metrics
	activePipelines prometheus.Gauge
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithSubsystem sets the subsystem for all metrics.
func WithSubsystem(subsystem string) Option {
	return func(m *Manager) {
		if subsystem != "" {
			m.subsystem = subsystem
		}
	}
}

// WithHistogramBuckets sets custom histogram buckets for latency metrics.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithPrometheusRegistry sets a custom Prometheus registry.
func WithPrometheusRegistry(registry prometheus.Registerer) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "clutch",
		subsystem:        "report",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.eventsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_loaded_total",
		Help:      "Total number of shot events loaded from input",
	})

	m.rowsDefaulted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_defaulted_total",
		Help:      "Total number of rows with fields that degraded to defaults",
	})

	m.parseFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "parse_failures_total",
		Help:      "Total number of inputs rejected for a missing or unreadable header",
	})

	m.reportsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_generated_total",
		Help:      "Total number of report trees successfully built",
	})

	m.reportErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_errors_total",
		Help:      "Total number of report pipelines that failed",
	})

	m.renderErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "render_errors_total",
		Help:      "Total number of renderer failures",
	})

	m.stageLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "stage_latency_seconds",
			Help:      "Histogram of per-stage pipeline latency in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"stage"},
	)

	m.activePipelines = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active_pipelines",
		Help:      "Number of per-player pipelines currently running",
	})
}

// Handler returns an HTTP handler serving the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// Package-level helpers against the global manager.

// RecordEventsLoaded adds n to the loaded-event counter.
func RecordEventsLoaded(n int) { globalManager.eventsLoaded.Add(float64(n)) }

// RecordRowDefaulted counts one row that degraded to default values.
func RecordRowDefaulted() { globalManager.rowsDefaulted.Inc() }

// RecordParseFailure counts one structurally unreadable input.
func RecordParseFailure() { globalManager.parseFailures.Inc() }

// RecordReportGenerated counts one successfully built report tree.
func RecordReportGenerated() { globalManager.reportsGenerated.Inc() }

// RecordReportError counts one failed pipeline.
func RecordReportError() { globalManager.reportErrors.Inc() }

// RecordRenderError counts one renderer failure.
func RecordRenderError() { globalManager.renderErrors.Inc() }

// RecordStageLatency records one stage duration in seconds.
func RecordStageLatency(stage string, seconds float64) {
	globalManager.stageLatency.WithLabelValues(stage).Observe(seconds)
}

// PipelineStarted increments the active-pipeline gauge.
func PipelineStarted() { globalManager.activePipelines.Inc() }

// PipelineFinished decrements the active-pipeline gauge.
func PipelineFinished() { globalManager.activePipelines.Dec() }
