package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When applying options to a manager", func() {
			registry := prometheus.NewRegistry()
			m := NewManager(
				WithNamespace("testns"),
				WithSubsystem("testsub"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the manager should reflect them", func() {
				So(m, ShouldNotBeNil)
				So(m.namespace, ShouldEqual, "testns")
				So(m.subsystem, ShouldEqual, "testsub")
				So(m.histogramBuckets, ShouldResemble, []float64{1, 5, 10})
				So(m.enabled, ShouldBeTrue)
			})
		})

		Convey("When applying empty values", func() {
			registry := prometheus.NewRegistry()
			m := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(registry),
			)

			Convey("Then defaults should be kept", func() {
				So(m.namespace, ShouldEqual, "stockroom")
				So(m.subsystem, ShouldEqual, "items")
				So(m.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
			})
		})
	})
}

func TestManagerMetricsRegistered(t *testing.T) {
	Convey("Given a manager on a fresh registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry))

		Convey("When exercising every metric", func() {
			m.httpRequests.WithLabelValues("items", "GET", "200").Inc()
			m.httpRequestDuration.WithLabelValues("items", "GET", "200").Observe(12)
			m.errorsByEndpoint.WithLabelValues("items", "GET", "client_error").Inc()
			m.storeRequests.WithLabelValues("select", "ok").Inc()
			m.storeRequestDuration.WithLabelValues("select").Observe(40)
			m.itemsCreated.Inc()
			m.itemsUpdated.Inc()
			m.itemsDeleted.Inc()
			m.systemMemoryUsage.Set(1024)
			m.systemGoroutineCount.Set(8)

			Convey("Then they should all be gatherable", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldEqual, 10)
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording through the package-level helpers", func() {
			RecordHTTPRequest("items", "GET", "200")
			RecordHTTPRequestDuration("items", "GET", "200", 3.5)
			RecordErrorByEndpoint("update", "PUT", "not_found")
			RecordStoreRequest("insert", "ok")
			RecordStoreRequestDuration("insert", 22)
			RecordItemCreated()
			RecordItemUpdated()
			RecordItemDeleted()
			UpdateSystemMemoryUsage(2048)
			UpdateSystemGoroutineCount(12)

			Convey("Then the custom registry should gather without error", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}
