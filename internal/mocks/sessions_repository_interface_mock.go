// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

type MockSessionsRepositoryInterface struct {
	mock.Mock
}

func (m *MockSessionsRepositoryInterface) FindActive(ctx context.Context, orderID, locationID string) (*model.FulfillmentSession, error) {
	args := m.Called(ctx, orderID, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FulfillmentSession), args.Error(1)
}

func (m *MockSessionsRepositoryInterface) Create(ctx context.Context, orderID, locationID string, parcelNumbers []int) (*model.FulfillmentSession, error) {
	args := m.Called(ctx, orderID, locationID, parcelNumbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FulfillmentSession), args.Error(1)
}

func (m *MockSessionsRepositoryInterface) Save(ctx context.Context, session *model.FulfillmentSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionsRepositoryInterface) UpdateParcel(ctx context.Context, sessionID string, parcelNumber int, status model.ParcelStatus) error {
	args := m.Called(ctx, sessionID, parcelNumber, status)
	return args.Error(0)
}

func (m *MockSessionsRepositoryInterface) Complete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
