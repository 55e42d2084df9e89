// Package metrics provides Prometheus metrics for the stockroom item service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// Store round trips
	storeRequests        *prometheus.CounterVec
	storeRequestDuration *prometheus.HistogramVec

	// Item lifecycle
	itemsCreated prometheus.Counter
	itemsUpdated prometheus.Counter
	itemsDeleted prometheus.Counter

	// Process health
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "stockroom",
		subsystem:        "items",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics registers all metrics on the configured registry.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method and status",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of error responses by endpoint, method and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.storeRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_requests_total",
			Help:      "Total number of record store round trips by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	m.storeRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_request_duration_milliseconds",
			Help:      "Record store round trip duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"operation"},
	)

	m.itemsCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "created_total",
		Help:      "Total number of items inserted via the API",
	})

	m.itemsUpdated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "updated_total",
		Help:      "Total number of successful partial updates",
	})

	m.itemsDeleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "deleted_total",
		Help:      "Total number of delete operations that removed a row",
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated heap bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// Package-level helpers operating on the global manager.

// RecordHTTPRequest counts a completed HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes a request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint counts an error response.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordStoreRequest counts a store round trip.
func RecordStoreRequest(operation, outcome string) {
	globalManager.storeRequests.WithLabelValues(operation, outcome).Inc()
}

// RecordStoreRequestDuration observes a store round trip duration in milliseconds.
func RecordStoreRequestDuration(operation string, durationMs float64) {
	globalManager.storeRequestDuration.WithLabelValues(operation).Observe(durationMs)
}

// RecordItemCreated counts a successful insert.
func RecordItemCreated() { globalManager.itemsCreated.Inc() }

// RecordItemUpdated counts a successful partial update.
func RecordItemUpdated() { globalManager.itemsUpdated.Inc() }

// RecordItemDeleted counts a delete that removed a row.
func RecordItemDeleted() { globalManager.itemsDeleted.Inc() }

// UpdateSystemMemoryUsage sets the allocated heap gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom registry used by the global manager, for
// serving via promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
