package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/fulfillment-service/internal/service"
)

// OrderRoutes handles order fulfillment route registration.
type OrderRoutes struct {
	handler *OrdersHandler
}

// NewOrderRoutes creates a new OrderRoutes instance.
func NewOrderRoutes(plans service.PlanProvider, orchestrator *service.Orchestrator, sessions service.SessionStore) *OrderRoutes {
	return &OrderRoutes{
		handler: NewOrdersHandler(plans, orchestrator, sessions),
	}
}

// RegisterPublicRoutes registers order routes (when auth is disabled).
func (r *OrderRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders/:order_id")
	orders.GET("/parcels", r.handler.GetParcels)
	orders.POST("/fulfillments", r.handler.CreateFulfillments)
	orders.GET("/fulfillment-session", r.handler.GetFulfillmentSession)
}

// RegisterProtectedRoutes registers order routes behind authentication.
func (r *OrderRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, _ *RouterConfig) {
	r.RegisterPublicRoutes(protected)
}

// GetHandler returns the underlying orders handler.
func (r *OrderRoutes) GetHandler() *OrdersHandler {
	return r.handler
}
