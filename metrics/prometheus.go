package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spartoo_api_requests_total",
			Help: "Total number of requests sent to the Spartoo API.",
		},
		[]string{"endpoint", "status"},
	)
	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spartoo_api_request_duration_seconds",
			Help:    "Histogram of Spartoo API request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"endpoint", "status"},
	)
	documentsBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spartoo_documents_built_total",
			Help: "Request documents serialized, by document kind.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(apiRequestsTotal)
	prometheus.MustRegister(apiRequestDuration)
	prometheus.MustRegister(documentsBuilt)
}

// RecordRequest records one API call. A zero status code means the request
// never got a response.
func RecordRequest(endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	apiRequestsTotal.WithLabelValues(endpoint, status).Inc()
	apiRequestDuration.WithLabelValues(endpoint, status).Observe(duration.Seconds())
}

func RecordDocument(kind string) {
	documentsBuilt.WithLabelValues(kind).Inc()
}

func classifyStatus(statusCode int) string {
	switch {
	case statusCode == 0:
		return "error"
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500 && statusCode < 600:
		return "5xx"
	}
	return "unknown"
}

// MetricsHandler exposes the default registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
