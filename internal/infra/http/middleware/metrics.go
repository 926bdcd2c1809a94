package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Total number of lead capture attempts",
		},
		[]string{"status"},
	)

	quotesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotes_created_total",
			Help: "Total number of quote creation attempts",
		},
		[]string{"status"},
	)

	quoteEmails = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_emails_total",
			Help: "Total number of quote notification emails",
		},
		[]string{"status"},
	)

	quoteReminders = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quote_reminders_sent_total",
			Help: "Total number of quote reminder emails sent",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadCapture(status string) {
	leadsCaptured.WithLabelValues(status).Inc()
}

func RecordQuoteCreation(status string) {
	quotesCreated.WithLabelValues(status).Inc()
}

func RecordQuoteEmail(status string) {
	quoteEmails.WithLabelValues(status).Inc()
}

func RecordQuoteReminder() {
	quoteReminders.Inc()
}
