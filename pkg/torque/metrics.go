package torque

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	errorTypeTransport = "transport"
	errorTypeAPI       = "api"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "torque_api_request_duration_seconds",
			Help:    "Duration of Torque API invocations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)

	requestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "torque_api_errors_total",
			Help: "Total Torque API invocation errors by type",
		},
		[]string{"operation", "error_type"},
	)
)

// recordRequest records one completed API invocation.
func recordRequest(operation, status string, duration time.Duration) {
	requestDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// recordError records one failed API invocation by failure class.
func recordError(operation, errorType string) {
	requestErrors.WithLabelValues(operation, errorType).Inc()
}
