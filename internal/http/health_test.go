package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/internal/circuitbreaker"
)

type stubChecker struct {
	err error
}

func (s stubChecker) Check() error { return s.err }

func setupHealthRouter(h *HealthHandler) *gin.Engine {
	router := gin.New()
	h.Register(router)
	return router
}

func TestHealthHandler_Liveness(t *testing.T) {
	router := setupHealthRouter(NewHealthHandler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	t.Run("no checkers registered", func(t *testing.T) {
		router := setupHealthRouter(NewHealthHandler())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("healthy checker", func(t *testing.T) {
		h := NewHealthHandler()
		h.RegisterChecker("mongodb", stubChecker{})
		router := setupHealthRouter(h)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		checks := body["checks"].(map[string]interface{})
		assert.Equal(t, "ok", checks["mongodb"])
	})

	t.Run("failing checker degrades readiness", func(t *testing.T) {
		h := NewHealthHandler()
		h.RegisterChecker("mongodb", stubChecker{err: errors.New("connection refused")})
		router := setupHealthRouter(h)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "degraded", body["status"])
	})

	t.Run("open circuit breaker degrades readiness", func(t *testing.T) {
		cb := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 1,
			SuccessThreshold: 1,
			Timeout:          time.Minute,
			Name:             "vendor-api",
		})
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("backend down")
		})

		h := NewHealthHandler()
		h.RegisterCircuitBreaker("vendor_api", cb)
		router := setupHealthRouter(h)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		checks := body["checks"].(map[string]interface{})
		assert.Equal(t, "open", checks["vendor_api_circuit"])
	})
}
