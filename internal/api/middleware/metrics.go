package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application collectors exposed on /metrics.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wedding",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of API requests by resource, action and status.",
		},
		[]string{"resource", "action", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wedding",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of API requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"resource", "action"},
	)

	giftReservations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wedding",
			Subsystem: "gifts",
			Name:      "reservations_total",
			Help:      "Gift reservation attempts by outcome.",
		},
		[]string{"outcome"},
	)

	driveUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wedding",
			Subsystem: "drive",
			Name:      "uploads_total",
			Help:      "Uploads relayed to external storage by path and outcome.",
		},
		[]string{"path", "outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		giftReservations,
		driveUploads,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Instrument records count and latency of one resource action. Labels come
// from the route table, never from the raw path, so ids do not leak into them.
func Instrument(resource, action string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		httpRequests.WithLabelValues(resource, action, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(resource, action).Observe(time.Since(start).Seconds())
	})
}

// ObserveReservation counts a reservation outcome: reserved, conflict,
// not_found or error.
func ObserveReservation(outcome string) {
	giftReservations.WithLabelValues(outcome).Inc()
}

// ObserveUpload counts an upload on path ("session", "gallery") by outcome.
func ObserveUpload(path, outcome string) {
	driveUploads.WithLabelValues(path, outcome).Inc()
}
