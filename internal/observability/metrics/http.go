package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServerMetrics instruments the intake API: request traffic plus the
// intake-specific counters the dashboards key on.
type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	documentsIngestedTotal *prometheus.CounterVec
	emailMessagesTotal     *prometheus.CounterVec
	statusPollsTotal       *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "extractly",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "extractly",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "extractly",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	documentsIngestedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "extractly",
			Subsystem: "intake",
			Name:      "documents_ingested_total",
			Help:      "Total documents attached to sessions, by source and outcome.",
		},
		[]string{"service", "source", "outcome"},
	)
	emailMessagesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "extractly",
			Subsystem: "intake",
			Name:      "email_messages_total",
			Help:      "Total inbound email messages, by outcome.",
		},
		[]string{"service", "outcome"},
	)
	statusPollsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "extractly",
			Subsystem: "sessions",
			Name:      "status_polls_total",
			Help:      "Total status endpoint hits, by reported status.",
		},
		[]string{"service", "session_status"},
	)

	registry.MustRegister(requestTotal, requestDuration, requestInFlight,
		documentsIngestedTotal, emailMessagesTotal, statusPollsTotal)

	return &HTTPServerMetrics{
		registry:               registry,
		requestTotal:           requestTotal,
		requestDuration:        requestDuration,
		requestInFlight:        requestInFlight,
		documentsIngestedTotal: documentsIngestedTotal,
		emailMessagesTotal:     emailMessagesTotal,
		statusPollsTotal:       statusPollsTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// normalizePath collapses per-session URLs so label cardinality stays flat.
func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/sessions/") && strings.HasSuffix(path, "/status"):
		return "/v1/sessions/{session_id}/status"
	case strings.HasPrefix(path, "/v1/sessions/") && strings.HasSuffix(path, "/documents"):
		return "/v1/sessions/{session_id}/documents"
	case strings.HasPrefix(path, "/v1/sessions/") && strings.HasSuffix(path, "/export"):
		return "/v1/sessions/{session_id}/export"
	default:
		return path
	}
}

func (m *HTTPServerMetrics) RecordDocumentIngested(service, source, outcome string) {
	if outcome == "" {
		outcome = "unknown"
	}
	m.documentsIngestedTotal.WithLabelValues(service, source, outcome).Inc()
}

func (m *HTTPServerMetrics) RecordEmailMessage(service, outcome string) {
	if outcome == "" {
		outcome = "unknown"
	}
	m.emailMessagesTotal.WithLabelValues(service, outcome).Inc()
}

func (m *HTTPServerMetrics) RecordStatusPoll(service, sessionStatus string) {
	if sessionStatus == "" {
		sessionStatus = "unknown"
	}
	m.statusPollsTotal.WithLabelValues(service, sessionStatus).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return hijacker.Hijack()
}

func (r *statusRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
