package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/fulfillment-service/internal/client"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/logger"
	"github.com/guttosm/fulfillment-service/internal/metrics"
	"github.com/guttosm/fulfillment-service/internal/service/cache"
)

// PlanKey is the cache key for one (order, location) plan.
func PlanKey(orderID, locationID string) string {
	return orderID + ":" + locationID
}

// PlanContext bundles everything a submission needs about an order at a
// location: the order itself, the vendor's shipping options, availability,
// and the parcel breakdown the panel was shown.
type PlanContext struct {
	Order   *model.Order
	Options map[string]model.ShippingOption
	Levels  map[string]model.InventoryLevel
	Plan    model.ParcelPlan
}

// PlanProvider computes parcel breakdowns for orders.
type PlanProvider interface {
	// Plan returns the parcel breakdown for the order at the location,
	// served from cache when fresh.
	Plan(ctx context.Context, orderID, locationID string) (model.ParcelPlan, *model.Order, error)
	// Bundle fetches order, options, and availability fresh from the
	// backend and attaches the (possibly cached) plan. Used at submit time.
	Bundle(ctx context.Context, orderID, locationID string) (*PlanContext, error)
	// InvalidatePlan drops the cached plan for the pair so the next read
	// recomputes it.
	InvalidatePlan(orderID, locationID string)
}

// PlanService implements PlanProvider on top of the backend client and the
// parcel planner.
type PlanService struct {
	api     client.VendorAPI
	planner ParcelPlanner
	cache   cache.Cache
}

// PlanServiceOption configures a PlanService.
type PlanServiceOption func(*PlanService)

// WithPlanCache enables plan caching with the given capacity and TTL.
func WithPlanCache(capacity int, ttl time.Duration) PlanServiceOption {
	return func(s *PlanService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) PlanServiceOption {
	return func(s *PlanService) {
		s.cache = c
	}
}

// NewPlanService creates a new PlanService.
func NewPlanService(api client.VendorAPI, planner ParcelPlanner, opts ...PlanServiceOption) *PlanService {
	s := &PlanService{
		api:     api,
		planner: planner,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan returns the parcel breakdown for the order at the location.
func (s *PlanService) Plan(ctx context.Context, orderID, locationID string) (model.ParcelPlan, *model.Order, error) {
	key := PlanKey(orderID, locationID)
	if s.cache != nil {
		if plan, ok := s.cache.Get(key); ok {
			order, err := s.api.GetOrder(ctx, orderID)
			if err != nil {
				return model.EmptyPlan(), nil, err
			}
			return plan, order, nil
		}
	}

	bundle, err := s.Bundle(ctx, orderID, locationID)
	if err != nil {
		return model.EmptyPlan(), nil, err
	}
	return bundle.Plan, bundle.Order, nil
}

// Bundle fetches order, options, and availability and computes the plan.
func (s *PlanService) Bundle(ctx context.Context, orderID, locationID string) (*PlanContext, error) {
	order, err := s.api.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("fetch order: %w", err)
	}

	options, err := s.api.ListShippingOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch shipping options: %w", err)
	}

	itemIDs := make([]string, 0, len(order.Items))
	for _, item := range order.ShippableItems() {
		itemIDs = append(itemIDs, item.ID)
	}

	levels := map[string]model.InventoryLevel{}
	if len(itemIDs) > 0 {
		levels, err = s.api.ListInventoryLevels(ctx, locationID, itemIDs)
		if err != nil {
			// Availability is advisory for planning; degrade to fulfillable
			// quantities rather than failing the whole breakdown.
			logger.Logger().Warn().
				Err(err).
				Str("order_id", orderID).
				Str("location_id", locationID).
				Msg("Inventory levels unavailable, planning on fulfillable quantities")
			levels = map[string]model.InventoryLevel{}
		}
	}

	key := PlanKey(orderID, locationID)
	var plan model.ParcelPlan
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			// Reuse the breakdown the panel was shown so parcel numbers
			// stay stable between display and submission.
			return &PlanContext{Order: order, Options: options, Levels: levels, Plan: cached}, nil
		}
	}

	start := time.Now()
	plan = s.planner.Plan(*order, options, levels)
	metrics.RecordParcelPlan(time.Since(start), "success")

	if s.cache != nil {
		s.cache.Set(key, plan)
	}
	return &PlanContext{Order: order, Options: options, Levels: levels, Plan: plan}, nil
}

// InvalidatePlan drops the cached plan for the pair.
func (s *PlanService) InvalidatePlan(orderID, locationID string) {
	if s.cache != nil {
		s.cache.Invalidate(PlanKey(orderID, locationID))
	}
}
