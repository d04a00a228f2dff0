// Package cache defines the plan cache contract.
//
// The cache is an explicit dependency passed by reference to the services
// that read and invalidate it; there is no module-level singleton. Keys are
// "orderID:locationID" pairs (see service.PlanKey).
package cache

import "github.com/guttosm/fulfillment-service/internal/domain/model"

// Cache defines the interface for plan cache operations.
type Cache interface {
	Get(key string) (model.ParcelPlan, bool)
	Set(key string, value model.ParcelPlan)
	// Invalidate drops a single entry, signalling readers to recompute.
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
