// Package metrics provides the centralized Prometheus registry reference for
// the find client. Metrics are defined in their respective packages (find,
// transport) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the find client.
// All metrics are automatically registered via promauto in their respective
// packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Find Metrics (pkg/find):
//   - find_requests_total{operation, status} (Counter): Find operations by operation (find, find_by_id) and outcome (ok, error)
//   - find_request_duration_seconds{operation} (Histogram): Operation duration
//   - find_errors_total{operation} (Counter): Transport failures surfaced by find operations
//
// Transport Metrics (pkg/transport):
//   - transport_requests_total{status} (Counter): HTTP requests by status code (or network_error)
//   - transport_request_duration_seconds (Histogram): Round-trip duration
//   - transport_errors_total{class} (Counter): Errors by class (client, server, network)
//
// Example Prometheus Queries:
//
//   # Find Error Rate
//   rate(find_errors_total[5m]) / rate(find_requests_total[5m])
//
//   # P95 Round-Trip Latency
//   histogram_quantile(0.95, rate(transport_request_duration_seconds_bucket[5m]))
//
//   # Client vs Server Error Split
//   sum by (class) (rate(transport_errors_total[5m]))
