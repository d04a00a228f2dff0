package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

func cachedPlan(numbers ...int) model.ParcelPlan {
	plan := model.EmptyPlan()
	for _, n := range numbers {
		plan.Parcels = append(plan.Parcels, model.Parcel{ParcelNumber: n})
	}
	return plan
}

func TestTTLCache_Get(t *testing.T) {
	tests := []struct {
		name          string
		setupCache    func() *ttlCache
		key           string
		expectedValue model.ParcelPlan
		expectedFound bool
	}{
		{
			name: "returns value when exists and not expired",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, time.Minute)
				c.Set("order_01:loc_01", cachedPlan(1, 2))
				return c
			},
			key:           "order_01:loc_01",
			expectedValue: cachedPlan(1, 2),
			expectedFound: true,
		},
		{
			name: "returns false when key not found",
			setupCache: func() *ttlCache {
				return newTTLCache(10, time.Minute)
			},
			key:           "order_99:loc_01",
			expectedFound: false,
		},
		{
			name: "returns false when expired",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, 50*time.Millisecond)
				c.Set("order_01:loc_01", cachedPlan(1))
				time.Sleep(100 * time.Millisecond)
				return c
			},
			key:           "order_01:loc_01",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := tt.setupCache()
			defer cache.Stop()

			value, found := cache.Get(tt.key)

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.expectedValue, value)
			}
		})
	}
}

func TestTTLCache_Set(t *testing.T) {
	t.Run("evicts LRU when at capacity", func(t *testing.T) {
		cache := newTTLCache(2, time.Minute)
		defer cache.Stop()

		cache.Set("a", cachedPlan(1))
		cache.Set("b", cachedPlan(2))
		cache.Set("c", cachedPlan(3))

		_, okA := cache.Get("a")
		_, okB := cache.Get("b")
		_, okC := cache.Get("c")
		assert.False(t, okA, "oldest entry evicted")
		assert.True(t, okB)
		assert.True(t, okC)
	})

	t.Run("recently used entry survives eviction", func(t *testing.T) {
		cache := newTTLCache(2, time.Minute)
		defer cache.Stop()

		cache.Set("a", cachedPlan(1))
		cache.Set("b", cachedPlan(2))
		cache.Get("a")
		cache.Set("c", cachedPlan(3))

		_, okA := cache.Get("a")
		_, okB := cache.Get("b")
		assert.True(t, okA)
		assert.False(t, okB)
	})

	t.Run("updates existing entry", func(t *testing.T) {
		cache := newTTLCache(10, time.Minute)
		defer cache.Stop()

		cache.Set("a", cachedPlan(1))
		cache.Set("a", cachedPlan(1, 2))

		value, ok := cache.Get("a")
		assert.True(t, ok)
		assert.Len(t, value.Parcels, 2)
	})
}

func TestTTLCache_Invalidate(t *testing.T) {
	cache := newTTLCache(10, time.Minute)
	defer cache.Stop()

	cache.Set("order_01:loc_01", cachedPlan(1))
	cache.Set("order_01:loc_02", cachedPlan(2))

	cache.Invalidate("order_01:loc_01")

	_, ok := cache.Get("order_01:loc_01")
	assert.False(t, ok)
	_, ok = cache.Get("order_01:loc_02")
	assert.True(t, ok, "other pairs untouched")

	// Invalidating an absent key is a no-op.
	cache.Invalidate("order_99:loc_01")
}

func TestTTLCache_Clear(t *testing.T) {
	cache := newTTLCache(10, time.Minute)
	defer cache.Stop()

	cache.Set("a", cachedPlan(1))
	cache.Set("b", cachedPlan(2))

	cache.Clear()

	_, okA := cache.Get("a")
	_, okB := cache.Get("b")
	assert.False(t, okA)
	assert.False(t, okB)
}
