package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "praxis_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	storeMutationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "praxis_store_mutations_total",
			Help: "Total number of store mutations by entity and action",
		},
		[]string{"entity", "action"},
	)
)

func RecordHTTPRequest(method string, path string, status string, duration time.Duration) {
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementStoreMutation(entity string, action string) {
	storeMutationCount.WithLabelValues(entity, action).Inc()
}
