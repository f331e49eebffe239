package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WorkerMetrics instruments the extraction worker.
type WorkerMetrics struct {
	registry *prometheus.Registry

	sessionTotal    *prometheus.CounterVec
	sessionDuration *prometheus.HistogramVec
	sessionInFlight prometheus.Gauge
	recordsWritten  *prometheus.HistogramVec
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	sessionTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "extractly",
			Subsystem: "worker",
			Name:      "session_process_total",
			Help:      "Total processed extraction sessions by terminal status.",
		},
		[]string{"service", "status"},
	)
	sessionDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "extractly",
			Subsystem: "worker",
			Name:      "session_process_duration_seconds",
			Help:      "Extraction session duration in seconds by terminal status.",
			Buckets:   []float64{1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"service", "status"},
	)
	sessionInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "extractly",
			Subsystem: "worker",
			Name:      "session_process_in_flight",
			Help:      "Number of sessions currently being extracted.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	recordsWritten := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "extractly",
			Subsystem: "worker",
			Name:      "records_written",
			Help:      "Validation records written per completed session.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
		[]string{"service"},
	)

	registry.MustRegister(sessionTotal, sessionDuration, sessionInFlight, recordsWritten)

	return &WorkerMetrics{
		registry:        registry,
		sessionTotal:    sessionTotal,
		sessionDuration: sessionDuration,
		sessionInFlight: sessionInFlight,
		recordsWritten:  recordsWritten,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartSession() {
	m.sessionInFlight.Inc()
}

func (m *WorkerMetrics) FinishSession(service, status string, elapsed time.Duration) {
	m.sessionInFlight.Dec()
	if status == "" {
		status = "unknown"
	}
	m.sessionTotal.WithLabelValues(service, status).Inc()
	m.sessionDuration.WithLabelValues(service, status).Observe(elapsed.Seconds())
}

func (m *WorkerMetrics) ObserveRecords(service string, count int) {
	if count <= 0 {
		return
	}
	m.recordsWritten.WithLabelValues(service).Observe(float64(count))
}
