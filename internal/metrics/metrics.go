// Package metrics provides Prometheus metrics collection for the fulfillment service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ParcelPlansTotal tracks parcel plan computations by status.
	ParcelPlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcel_plans_total",
			Help: "Total number of parcel plan computations",
		},
		[]string{"status"},
	)

	// ParcelPlanDuration tracks parcel plan computation duration.
	ParcelPlanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parcel_plan_duration_seconds",
			Help:    "Parcel plan computation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// FulfillmentSubmissionsTotal tracks submission runs by mode and status.
	FulfillmentSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_submissions_total",
			Help: "Total number of fulfillment submission runs",
		},
		[]string{"mode", "status"},
	)

	// FulfillmentRequestsTotal tracks individual fulfillment-creation requests
	// issued to the backend.
	FulfillmentRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_requests_total",
			Help: "Total number of fulfillment-creation requests sent to the backend",
		},
		[]string{"status"},
	)

	// BackendRequestDuration tracks marketplace backend request duration.
	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_request_duration_seconds",
			Help:    "Marketplace backend request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)

	// CacheOperationsTotal tracks plan cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of plan cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current plan cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current plan cache size",
		},
	)

	// CacheCapacity tracks plan cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Plan cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordParcelPlan records metrics for a parcel plan computation.
func RecordParcelPlan(duration time.Duration, status string) {
	ParcelPlanDuration.Observe(duration.Seconds())
	ParcelPlansTotal.WithLabelValues(status).Inc()
}

// RecordSubmission records metrics for a fulfillment submission run.
func RecordSubmission(mode, status string) {
	FulfillmentSubmissionsTotal.WithLabelValues(mode, status).Inc()
}

// RecordFulfillmentRequest records one fulfillment-creation request outcome.
func RecordFulfillmentRequest(status string) {
	FulfillmentRequestsTotal.WithLabelValues(status).Inc()
}

// RecordBackendRequest records a backend call's duration and outcome.
func RecordBackendRequest(operation string, duration time.Duration, status string) {
	BackendRequestDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
