// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

type MockVendorAPI struct {
	mock.Mock
}

func (m *MockVendorAPI) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockVendorAPI) ListShippingOptions(ctx context.Context) (map[string]model.ShippingOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.ShippingOption), args.Error(1)
}

func (m *MockVendorAPI) ListInventoryLevels(ctx context.Context, locationID string, itemIDs []string) (map[string]model.InventoryLevel, error) {
	args := m.Called(ctx, locationID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.InventoryLevel), args.Error(1)
}

func (m *MockVendorAPI) CreateFulfillment(ctx context.Context, orderID string, payload model.FulfillmentPayload) (*model.Fulfillment, error) {
	args := m.Called(ctx, orderID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fulfillment), args.Error(1)
}
