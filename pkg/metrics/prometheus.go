// Package metrics provides Prometheus metrics for the pick'em leaderboard
// engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core business metrics
	computations       prometheus.Counter
	computationLatency prometheus.Histogram
	entrantsScored     prometheus.Counter

	// Upstream scoreboard metrics
	upstreamFetches      prometheus.Counter
	upstreamFetchErrors  prometheus.Counter
	upstreamFetchLatency prometheus.Histogram

	// Snapshot cache metrics
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	cacheErrors prometheus.Counter

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Operational gauges
	workerCount prometheus.Gauge
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
		namespace:        "pickem",
		subsystem:        "leaderboard",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.register()
	return m
}

func (m *Manager) register() {
	factory := func(name, help string) prometheus.Counter {
		c := prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
		})
		m.registry.MustRegister(c)
		return c
	}
	histogram := func(name, help string) prometheus.Histogram {
		h := prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help,
			Buckets: m.histogramBuckets,
		})
		m.registry.MustRegister(h)
		return h
	}

	m.computations = factory("computations_total", "Leaderboard computations performed.")
	m.computationLatency = histogram("computation_latency_ms", "End-to-end compute latency in milliseconds.")
	m.entrantsScored = factory("entrants_scored_total", "Entrants scored across all computations.")

	m.upstreamFetches = factory("upstream_fetches_total", "Successful scoreboard fetches.")
	m.upstreamFetchErrors = factory("upstream_fetch_errors_total", "Failed scoreboard fetches.")
	m.upstreamFetchLatency = histogram("upstream_fetch_latency_ms", "Scoreboard fetch latency in milliseconds.")

	m.cacheHits = factory("cache_hits_total", "Snapshot cache hits.")
	m.cacheMisses = factory("cache_misses_total", "Snapshot cache misses.")
	m.cacheErrors = factory("cache_errors_total", "Snapshot cache read/write failures.")

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "http_requests_total", Help: "HTTP requests by endpoint, method, and status.",
	}, []string{"endpoint", "method", "status"})
	m.registry.MustRegister(m.httpRequests)

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "http_request_duration_ms", Help: "HTTP request duration in milliseconds.",
		Buckets: m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
	m.registry.MustRegister(m.httpRequestDuration)

	m.workerCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "worker_count", Help: "Configured scoring fan-out width.",
	})
	m.registry.MustRegister(m.workerCount)
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers delegate to the global manager.

// RecordComputation increments the computation counter.
func RecordComputation() {
	if globalManager.enabled {
		globalManager.computations.Inc()
	}
}

// RecordComputationLatency observes one compute duration in milliseconds.
func RecordComputationLatency(ms float64) {
	if globalManager.enabled {
		globalManager.computationLatency.Observe(ms)
	}
}

// RecordEntrantsScored adds a roster size to the scored-entrants counter.
func RecordEntrantsScored(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.entrantsScored.Add(float64(n))
	}
}

// RecordUpstreamFetch increments the successful fetch counter.
func RecordUpstreamFetch() {
	if globalManager.enabled {
		globalManager.upstreamFetches.Inc()
	}
}

// RecordUpstreamFetchError increments the failed fetch counter.
func RecordUpstreamFetchError() {
	if globalManager.enabled {
		globalManager.upstreamFetchErrors.Inc()
	}
}

// RecordUpstreamFetchLatency observes one fetch duration in milliseconds.
func RecordUpstreamFetchLatency(ms float64) {
	if globalManager.enabled {
		globalManager.upstreamFetchLatency.Observe(ms)
	}
}

// RecordCacheHit increments the snapshot cache hit counter.
func RecordCacheHit() {
	if globalManager.enabled {
		globalManager.cacheHits.Inc()
	}
}

// RecordCacheMiss increments the snapshot cache miss counter.
func RecordCacheMiss() {
	if globalManager.enabled {
		globalManager.cacheMisses.Inc()
	}
}

// RecordCacheError increments the snapshot cache error counter.
func RecordCacheError() {
	if globalManager.enabled {
		globalManager.cacheErrors.Inc()
	}
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration observes one HTTP request duration in
// milliseconds.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
	}
}

// UpdateWorkerCount sets the configured fan-out width gauge.
func UpdateWorkerCount(n int) {
	if globalManager.enabled {
		globalManager.workerCount.Set(float64(n))
	}
}
