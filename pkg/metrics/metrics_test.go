package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a custom registry and options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{0.1, 1, 10}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then its metrics should be registered under the namespace", func() {
				So(manager, ShouldNotBeNil)
				manager.assessmentsSubmitted.Inc()
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, f := range families {
					if f.GetName() == "test_unit_submitted_total" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When two managers share one registry", func() {
			registry := prometheus.NewRegistry()
			NewManager(WithPrometheusRegistry(registry))

			Convey("Then the second registration should panic", func() {
				So(func() { NewManager(WithPrometheusRegistry(registry)) }, ShouldPanic)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics", t, func() {
		Convey("When recording assessments", func() {
			before := testutil.ToFloat64(globalManager.assessmentsSubmitted)
			RecordAssessmentSubmitted()
			RecordAssessmentDuplicate()
			RecordAssembleLatency(0.2)

			Convey("Then the counters should move", func() {
				So(testutil.ToFloat64(globalManager.assessmentsSubmitted), ShouldEqual, before+1)
			})
		})

		Convey("When recording recommendations by match type", func() {
			before := testutil.ToFloat64(globalManager.recommendations.WithLabelValues("perfect"))
			RecordRecommendation("perfect")
			RecordRecommendation("perfect")
			RecordOpportunities(3)

			Convey("Then the labelled counter should count both", func() {
				So(testutil.ToFloat64(globalManager.recommendations.WithLabelValues("perfect")), ShouldEqual, before+2)
			})
		})

		Convey("When recording notification outcomes", func() {
			before := testutil.ToFloat64(globalManager.notifications.WithLabelValues(NotificationDropped))
			RecordNotification(NotificationDropped)

			Convey("Then the outcome should be counted", func() {
				So(testutil.ToFloat64(globalManager.notifications.WithLabelValues(NotificationDropped)), ShouldEqual, before+1)
			})
		})

		Convey("When updating gauges", func() {
			UpdateQueueSize(7)
			UpdateQueueCapacity(10)
			UpdateQueueUtilization(0.7)
			UpdateWorkerActiveCount(2)
			UpdateStoreRecords(42)

			Convey("Then they should hold the last value", func() {
				So(testutil.ToFloat64(globalManager.queueSize), ShouldEqual, 7)
				So(testutil.ToFloat64(globalManager.storeRecords), ShouldEqual, 42)
				So(testutil.ToFloat64(globalManager.workerActiveCount), ShouldEqual, 2)
			})
		})

		Convey("When recording the remaining series", func() {
			So(func() {
				RecordStoreLatency("save", 1.5)
				RecordWorkerLatency(3)
				RecordHTTPRequest("/assessments", "POST", "200")
				RecordHTTPRequestDuration("/assessments", "POST", "200", 4)
				RecordErrorByComponent("store", "not_found")
				RecordErrorByEndpoint("/results", "GET", "not_found")
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(12)
				RecordSystemGCPauseTime(0.3)
			}, ShouldNotPanic)
		})

		Convey("When gathering the custom registry", func() {
			RecordHTTPRequest("/healthz", "GET", "200")
			families, err := GetRegistry().Gather()

			Convey("Then it should expose the service namespace only", func() {
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
				for _, f := range families {
					So(strings.HasPrefix(f.GetName(), "giftmatch_assessment_"), ShouldBeTrue)
				}
			})
		})
	})
}
