// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/service"
)

type MockPlanProvider struct {
	mock.Mock
}

func (m *MockPlanProvider) Plan(ctx context.Context, orderID, locationID string) (model.ParcelPlan, *model.Order, error) {
	args := m.Called(ctx, orderID, locationID)
	var order *model.Order
	if args.Get(1) != nil {
		order = args.Get(1).(*model.Order)
	}
	return args.Get(0).(model.ParcelPlan), order, args.Error(2)
}

func (m *MockPlanProvider) Bundle(ctx context.Context, orderID, locationID string) (*service.PlanContext, error) {
	args := m.Called(ctx, orderID, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PlanContext), args.Error(1)
}

func (m *MockPlanProvider) InvalidatePlan(orderID, locationID string) {
	m.Called(orderID, locationID)
}
