// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// SessionsRepositoryInterface defines the interface for fulfillment session
// repository operations.
type SessionsRepositoryInterface interface {
	FindActive(ctx context.Context, orderID, locationID string) (*model.FulfillmentSession, error)
	Create(ctx context.Context, orderID, locationID string, parcelNumbers []int) (*model.FulfillmentSession, error)
	Save(ctx context.Context, session *model.FulfillmentSession) error
	UpdateParcel(ctx context.Context, sessionID string, parcelNumber int, status model.ParcelStatus) error
	Complete(ctx context.Context, sessionID string) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
