package pagination

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts the total number of feed pagination requests.
	// Labels: status (HTTP status code), page_range (page bucket: 0-9, 10-49, etc.)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_pagination_requests_total",
			Help: "Total number of feed pagination requests",
		},
		[]string{"status", "page_range"},
	)

	// DurationSeconds tracks request duration distribution.
	// Labels: operation (handler, service, repository)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_pagination_duration_seconds",
			Help:    "Request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// SearchTotalCount tracks the total reported by the most recent
	// search count query.
	SearchTotalCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "search_result_total_count",
			Help: "Total matches reported by the most recent search",
		},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: type (validation, database, timeout)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_pagination_errors_total",
			Help: "Total number of feed pagination errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records a pagination request metric.
func RecordRequest(statusCode int, page int) {
	RequestsTotal.WithLabelValues(
		fmt.Sprintf("%d", statusCode),
		getPageRangeBucket(page),
	).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(operation string, duration float64) {
	DurationSeconds.WithLabelValues(operation).Observe(duration)
}

// UpdateSearchTotal updates the search total gauge.
func UpdateSearchTotal(count int64) {
	SearchTotalCount.Set(float64(count))
}

// RecordError records an error metric.
// errorType should be one of: "validation", "database", "timeout"
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// getPageRangeBucket returns the page range bucket for a 0-based page index.
func getPageRangeBucket(page int) string {
	switch {
	case page < 10:
		return "0-9"
	case page < 50:
		return "10-49"
	case page < 100:
		return "50-99"
	default:
		return "100+"
	}
}
