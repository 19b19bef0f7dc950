package metrics_test

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/clutchreport/pkg/metrics"
)

func TestManagerRegistration(t *testing.T) {
	Convey("Given a manager on a fresh registry", t, func() {
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(
			metrics.WithPrometheusRegistry(reg),
			metrics.WithNamespace("testns"),
			metrics.WithSubsystem("testsub"),
		)

		Convey("When gathering", func() {
			families, err := reg.Gather()

			Convey("Then all pipeline metrics are registered", func() {
				So(m, ShouldNotBeNil)
				So(err, ShouldBeNil)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["testns_testsub_events_loaded_total"], ShouldBeTrue)
				So(names["testns_testsub_reports_generated_total"], ShouldBeTrue)
				So(names["testns_testsub_active_pipelines"], ShouldBeTrue)
			})
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording pipeline activity", func() {
			So(func() {
				metrics.RecordEventsLoaded(25)
				metrics.RecordRowDefaulted()
				metrics.RecordParseFailure()
				metrics.RecordReportGenerated()
				metrics.RecordReportError()
				metrics.RecordRenderError()
				metrics.RecordStageLatency(metrics.StageAggregate, 0.002)
				metrics.PipelineStarted()
				metrics.PipelineFinished()
			}, ShouldNotPanic)
		})
	})
}

func TestHandler(t *testing.T) {
	Convey("Given the metrics HTTP handler", t, func() {
		metrics.RecordReportGenerated()

		Convey("When scraping", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/metrics", nil)
			metrics.Handler().ServeHTTP(rec, req)

			Convey("Then the exposition contains pipeline counters", func() {
				So(rec.Code, ShouldEqual, 200)
				So(rec.Body.String(), ShouldContainSubstring, "clutch_report_reports_generated_total")
			})
		})
	})
}
