// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// Prometheus instrumentation for HTTP traffic plus a handful of
// domain counters incremented by the handlers. Labels stay on the
// registered route, not the raw URL, to keep cardinality bounded.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// Status is omitted here to keep histogram cardinality lower.
	httpLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)

	// Buckets sized for JSON payloads; public transcripts are the largest.
	httpRespSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_size_bytes",
			Help: "Size of HTTP responses in bytes.",
			Buckets: []float64{
				200, 500, 1 << 10, 2 << 10, 5 << 10,
				10 << 10, 25 << 10, 50 << 10,
				100 << 10, 250 << 10, 500 << 10,
			},
		},
		[]string{"method", "path"},
	)

	swipesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "synthhearts_swipes_total",
			Help: "Swipes recorded, by direction.",
		},
		[]string{"direction"},
	)

	matchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "synthhearts_matches_total",
			Help: "Mutual matches created.",
		},
	)

	messagesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "synthhearts_messages_total",
			Help: "Chat messages accepted, excluding scripted replies.",
		},
	)
)

func init() {
	prometheus.MustRegister(httpReqs, httpLat, httpInflight, httpRespSize,
		swipesTotal, matchesTotal, messagesTotal)
}

// CountSwipe records a swipe outcome for the dashboard counters.
func CountSwipe(direction string, matched bool) {
	swipesTotal.WithLabelValues(direction).Inc()
	if matched {
		matchesTotal.Inc()
	}
}

// CountMessage records an accepted chat message.
func CountMessage() {
	messagesTotal.Inc()
}

// Metrics instruments requests: http_requests_total(method, path, status),
// http_request_duration_seconds, http_requests_inflight, and
// http_response_size_bytes. Unmatched routes fall back to the raw path.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInflight.Inc()
		defer httpInflight.Dec()

		c.Next()

		dur := time.Since(start).Seconds()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		httpReqs.WithLabelValues(method, path, status).Inc()
		httpLat.WithLabelValues(method, path).Observe(dur)
		// Size is -1 when unknown; skip rather than record garbage.
		if size := c.Writer.Size(); size >= 0 {
			httpRespSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}
