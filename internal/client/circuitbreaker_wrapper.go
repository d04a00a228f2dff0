// Package client provides circuit breaker wrapping for the vendor API client.
package client

import (
	"context"

	"github.com/guttosm/fulfillment-service/internal/circuitbreaker"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// VendorAPIWithCircuitBreaker wraps a VendorAPI with circuit breaker protection.
// Write operations (fulfillment creation) share the breaker with reads so a
// failing backend stops the whole flow quickly instead of half-committing
// submissions against a dead upstream.
type VendorAPIWithCircuitBreaker struct {
	api            VendorAPI
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewVendorAPIWithCircuitBreaker creates a new client wrapper with circuit breaker.
func NewVendorAPIWithCircuitBreaker(api VendorAPI, cb *circuitbreaker.CircuitBreaker) *VendorAPIWithCircuitBreaker {
	return &VendorAPIWithCircuitBreaker{
		api:            api,
		circuitBreaker: cb,
	}
}

// GetOrder retrieves an order with circuit breaker protection.
func (c *VendorAPIWithCircuitBreaker) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	var result *model.Order
	err := c.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = c.api.GetOrder(ctx, orderID)
		return cbErr
	})
	return result, err
}

// ListShippingOptions retrieves shipping options with circuit breaker protection.
func (c *VendorAPIWithCircuitBreaker) ListShippingOptions(ctx context.Context) (map[string]model.ShippingOption, error) {
	var result map[string]model.ShippingOption
	err := c.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = c.api.ListShippingOptions(ctx)
		return cbErr
	})
	return result, err
}

// ListInventoryLevels retrieves inventory levels with circuit breaker protection.
func (c *VendorAPIWithCircuitBreaker) ListInventoryLevels(ctx context.Context, locationID string, itemIDs []string) (map[string]model.InventoryLevel, error) {
	var result map[string]model.InventoryLevel
	err := c.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = c.api.ListInventoryLevels(ctx, locationID, itemIDs)
		return cbErr
	})
	return result, err
}

// CreateFulfillment creates a fulfillment with circuit breaker protection.
func (c *VendorAPIWithCircuitBreaker) CreateFulfillment(ctx context.Context, orderID string, payload model.FulfillmentPayload) (*model.Fulfillment, error) {
	var result *model.Fulfillment
	err := c.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = c.api.CreateFulfillment(ctx, orderID, payload)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (c *VendorAPIWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return c.circuitBreaker
}
