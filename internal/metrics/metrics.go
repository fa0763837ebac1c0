// Package metrics contains prometheus collectors of the ledger.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agora",
			Subsystem: "ledger",
			Name:      "operations_total",
			Help:      "Total number of ledger operations by result kind.",
		},
		[]string{"operation", "result"},
	)

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "agora",
			Subsystem: "ledger",
			Name:      "operation_duration_seconds",
			Help:      "Duration of ledger operations.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"operation"},
	)

	abxIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agora",
			Subsystem: "ledger",
			Name:      "abx_issued_total",
			Help:      "Total amount of ABX sold for native funds.",
		},
	)

	settlements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agora",
			Subsystem: "ledger",
			Name:      "settlements_total",
			Help:      "Total number of settled products by outcome.",
		},
		[]string{"status"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "agora",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	Registry.MustRegister(
		operations,
		operationDuration,
		abxIssued,
		settlements,
		httpRequests,
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordOperation records a finished ledger operation. Empty result means success.
func RecordOperation(operation, result string, duration time.Duration) {
	if result == "" {
		result = "ok"
	}
	operations.WithLabelValues(operation, result).Inc()
	operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordABXIssued ...
func RecordABXIssued(amount uint64) {
	abxIssued.Add(float64(amount))
}

// RecordSettlement ...
func RecordSettlement(status string) {
	settlements.WithLabelValues(status).Inc()
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}

		httpRequests.WithLabelValues(strings.ToUpper(r.Method), path, strconv.Itoa(rec.status)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
