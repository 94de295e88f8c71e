package find

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for find operations.
var (
	findRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "find_requests_total",
		Help: "Total find operations by operation and outcome",
	}, []string{"operation", "status"})

	findRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "find_request_duration_seconds",
		Help:    "Find operation duration in seconds by operation",
		Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
	}, []string{"operation"})

	findErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "find_errors_total",
		Help: "Total transport failures surfaced by find operations",
	}, []string{"operation"})
)
