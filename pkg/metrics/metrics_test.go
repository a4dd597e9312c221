package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording computation metrics", func() {
			Convey("Then it should record computations", func() {
				So(func() {
					RecordComputation()
					RecordComputation()
				}, ShouldNotPanic)
			})

			Convey("And it should record computation latency", func() {
				So(func() {
					RecordComputationLatency(5.0)
					RecordComputationLatency(12.5)
				}, ShouldNotPanic)
			})

			Convey("And it should record entrants scored", func() {
				So(func() {
					RecordEntrantsScored(10)
					RecordEntrantsScored(0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording upstream metrics", func() {
			So(func() {
				RecordUpstreamFetch()
				RecordUpstreamFetchError()
				RecordUpstreamFetchLatency(250.0)
			}, ShouldNotPanic)
		})

		Convey("When recording cache metrics", func() {
			So(func() {
				RecordCacheHit()
				RecordCacheMiss()
				RecordCacheError()
			}, ShouldNotPanic)
		})

		Convey("When recording HTTP metrics", func() {
			So(func() {
				RecordHTTPRequest("/v1/leaderboard/live", "POST", "200")
				RecordHTTPRequestDuration("/v1/leaderboard/live", "POST", "200", 42.0)
			}, ShouldNotPanic)
		})

		Convey("When updating the worker gauge", func() {
			So(func() {
				UpdateWorkerCount(8)
			}, ShouldNotPanic)
		})
	})
}

func TestGlobalRegistry(t *testing.T) {
	Convey("Given the global registry", t, func() {
		Convey("Then it should be available for the exposition handler", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})

		Convey("And recorded series should be gatherable", func() {
			RecordComputation()
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
