package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupIdempotencyRouter(cfg IdempotencyConfig) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Idempotency(cfg))

	calls := 0
	router.POST("/orders/order_01/fulfillments", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"message": "Fulfillment created"})
	})
	router.GET("/orders/order_01/parcels", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"parcels": []string{}})
	})
	return router, &calls
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	router, calls := setupIdempotencyRouter(DefaultIdempotencyConfig())

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders/order_01/fulfillments",
			strings.NewReader(`{"location_id":"loc_01","use_parcels":true,"parcels":[1,2]}`))
		req.Header.Set(IdempotencyKeyHeader, "submit-abc")
		router.ServeHTTP(w, req)
		return w
	}

	first := do()
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Header().Get("X-Idempotency-Replayed"))

	second := do()
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, *calls, "handler ran once")
}

func TestIdempotency_DifferentBodiesAreNotReplayed(t *testing.T) {
	router, calls := setupIdempotencyRouter(DefaultIdempotencyConfig())

	do := func(body string) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders/order_01/fulfillments", strings.NewReader(body))
		req.Header.Set(IdempotencyKeyHeader, "submit-abc")
		router.ServeHTTP(w, req)
	}

	do(`{"parcels":[1]}`)
	do(`{"parcels":[2]}`)

	assert.Equal(t, 2, *calls, "same key with a different body is a different request")
}

func TestIdempotency_SkipsWithoutKey(t *testing.T) {
	router, calls := setupIdempotencyRouter(DefaultIdempotencyConfig())

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders/order_01/fulfillments",
			strings.NewReader(`{"location_id":"loc_01"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	assert.Equal(t, 2, *calls)
}

func TestIdempotency_IgnoresReads(t *testing.T) {
	router, calls := setupIdempotencyRouter(DefaultIdempotencyConfig())

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders/order_01/parcels", nil)
		req.Header.Set(IdempotencyKeyHeader, "read-abc")
		router.ServeHTTP(w, req)
		assert.Empty(t, w.Header().Get("X-Idempotency-Replayed"))
	}

	assert.Equal(t, 2, *calls)
}

func TestIdempotency_Disabled(t *testing.T) {
	router, calls := setupIdempotencyRouter(IdempotencyConfig{Enabled: false})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders/order_01/fulfillments",
			strings.NewReader(`{}`))
		req.Header.Set(IdempotencyKeyHeader, "submit-abc")
		router.ServeHTTP(w, req)
	}

	assert.Equal(t, 2, *calls)
}
