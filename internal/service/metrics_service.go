package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for the health endpoint.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	kvDuration      *prometheus.HistogramVec
	kvFailures      *prometheus.CounterVec
	persistedWrites *prometheus.CounterVec
	resetSessions   prometheus.Gauge
	resetOutcomes   *prometheus.CounterVec

	requestCount         uint64
	requestDurationTotal uint64
	kvFailureCount       uint64
	activeResetSessions  int64
}

// SystemMetrics is a point-in-time summary of process activity.
type SystemMetrics struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	StorageFailures          uint64    `json:"storage_failures"`
	ResetSessions            int64     `json:"reset_sessions"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	kvDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kv_operation_duration_seconds",
		Help:    "Latency of key-value store operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})

	kvFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kv_failures_total",
		Help: "Key-value operations that failed and were degraded",
	}, []string{"op"})

	persistedWrites := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "persisted_writes_total",
		Help: "Collection persist attempts by key and outcome",
	}, []string{"key", "outcome"})

	resetSessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "password_reset_sessions",
		Help: "Open password reset sessions",
	})

	resetOutcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "password_reset_transitions_total",
		Help: "Password reset submissions by stage and result",
	}, []string{"stage", "result"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, kvDuration, kvFailures, persistedWrites, resetSessions, resetOutcomes, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		kvDuration:      kvDuration,
		kvFailures:      kvFailures,
		persistedWrites: persistedWrites,
		resetSessions:   resetSessions,
		resetOutcomes:   resetOutcomes,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveKV records a key-value operation. Absent keys are not failures.
func (m *MetricsService) ObserveKV(op string, failed bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.kvDuration.WithLabelValues(op).Observe(duration.Seconds())
	if failed {
		m.kvFailures.WithLabelValues(op).Inc()
		atomic.AddUint64(&m.kvFailureCount, 1)
	}
}

// RecordPersist counts a collection write.
func (m *MetricsService) RecordPersist(key string, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "dropped"
	}
	m.persistedWrites.WithLabelValues(key, outcome).Inc()
}

// SetResetSessions publishes the number of open reset sessions.
func (m *MetricsService) SetResetSessions(n int) {
	if m == nil {
		return
	}
	m.resetSessions.Set(float64(n))
	atomic.StoreInt64(&m.activeResetSessions, int64(n))
}

// RecordResetTransition counts a reset flow submission.
func (m *MetricsService) RecordResetTransition(stage, result string) {
	if m == nil {
		return
	}
	m.resetOutcomes.WithLabelValues(stage, result).Inc()
}

// Snapshot returns aggregated metrics.
func (m *MetricsService) Snapshot() SystemMetrics {
	if m == nil {
		return SystemMetrics{Goroutines: runtime.NumGoroutine(), GeneratedAt: time.Now().UTC()}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return SystemMetrics{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		StorageFailures:          atomic.LoadUint64(&m.kvFailureCount),
		ResetSessions:            atomic.LoadInt64(&m.activeResetSessions),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
