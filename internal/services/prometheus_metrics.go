package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics implements MetricsRecorderInterface on the default
// prometheus registry. Construct it once per process; promauto panics on
// duplicate registration.
type PrometheusMetrics struct {
	cacheHits         *prometheus.CounterVec
	cacheMisses       *prometheus.CounterVec
	gridBuildDuration prometheus.Histogram
	gridRows          prometheus.Histogram
	mutations         *prometheus.CounterVec
	workingSetPending prometheus.Gauge
}

// NewPrometheusMetrics creates and registers the engine metrics
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lunargrid_aggregation_cache_hits_total",
			Help: "Aggregation memo cache hits by aggregation kind",
		}, []string{"kind"}),
		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lunargrid_aggregation_cache_misses_total",
			Help: "Aggregation memo cache misses by aggregation kind",
		}, []string{"kind"}),
		gridBuildDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lunargrid_grid_build_duration_seconds",
			Help:    "Time spent building a full month grid",
			Buckets: prometheus.DefBuckets,
		}),
		gridRows: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lunargrid_grid_rows",
			Help:    "Row count of built grids",
			Buckets: []float64{5, 10, 25, 50, 100, 250},
		}),
		mutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lunargrid_transaction_mutations_total",
			Help: "Transaction mutations by operation and dispatch status",
		}, []string{"operation", "status"}),
		workingSetPending: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lunargrid_working_set_pending_operations",
			Help: "Optimistic operations not yet superseded by a reconcile",
		}),
	}
}

func (m *PrometheusMetrics) RecordCacheHit(kind string) {
	m.cacheHits.WithLabelValues(kind).Inc()
}

func (m *PrometheusMetrics) RecordCacheMiss(kind string) {
	m.cacheMisses.WithLabelValues(kind).Inc()
}

func (m *PrometheusMetrics) RecordGridBuild(duration time.Duration, rows int) {
	m.gridBuildDuration.Observe(duration.Seconds())
	m.gridRows.Observe(float64(rows))
}

func (m *PrometheusMetrics) RecordMutation(operation, status string) {
	m.mutations.WithLabelValues(operation, status).Inc()
}

func (m *PrometheusMetrics) RecordWorkingSetPending(ops int) {
	m.workingSetPending.Set(float64(ops))
}

// noopMetrics discards every observation; used in tests.
type noopMetrics struct{}

// NewNoopMetrics returns a recorder that discards everything
func NewNoopMetrics() MetricsRecorderInterface { return noopMetrics{} }

func (noopMetrics) RecordCacheHit(string)              {}
func (noopMetrics) RecordCacheMiss(string)             {}
func (noopMetrics) RecordGridBuild(time.Duration, int) {}
func (noopMetrics) RecordMutation(string, string)      {}
func (noopMetrics) RecordWorkingSetPending(int)        {}
