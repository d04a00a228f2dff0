package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/internal/mocks"
	"github.com/guttosm/fulfillment-service/internal/service"
)

func newOrderRoutes() *OrderRoutes {
	plans := new(mocks.MockPlanProvider)
	orch := service.NewOrchestrator(new(mocks.MockVendorAPI), plans)
	return NewOrderRoutes(plans, orch, service.NewMemorySessionStore())
}

func TestNewOrderRoutes(t *testing.T) {
	routes := newOrderRoutes()

	require.NotNil(t, routes)
	assert.NotNil(t, routes.GetHandler())
}

func TestOrderRoutes_RegisterPublicRoutes(t *testing.T) {
	routes := newOrderRoutes()

	router := gin.New()
	routes.RegisterPublicRoutes(router.Group("/api"))

	// Verify routes are registered by checking if they respond.
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/orders/order_01/parcels"},
		{http.MethodPost, "/api/orders/order_01/fulfillments"},
		{http.MethodGet, "/api/orders/order_01/fulfillment-session"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestOrderRoutes_RegisterProtectedRoutes(t *testing.T) {
	routes := newOrderRoutes()
	cfg := DefaultRouterConfig()

	router := gin.New()
	routes.RegisterProtectedRoutes(router.Group("/api"), &cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/order_01/parcels", nil))

	assert.NotEqual(t, http.StatusNotFound, w.Code)
}

func TestOrderRoutes_GetHandler(t *testing.T) {
	routes := newOrderRoutes()

	assert.Same(t, routes.handler, routes.GetHandler())
}
