// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/fulfillment-service/internal/circuitbreaker"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// SessionsRepositoryWithCircuitBreaker wraps SessionsRepository with circuit breaker protection.
type SessionsRepositoryWithCircuitBreaker struct {
	repo           *SessionsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSessionsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewSessionsRepositoryWithCircuitBreaker(repo *SessionsRepository, cb *circuitbreaker.CircuitBreaker) *SessionsRepositoryWithCircuitBreaker {
	return &SessionsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// FindActive returns the active session with circuit breaker protection.
// If the circuit is open, returns nil so the submission proceeds without
// persisted commit tracking.
func (r *SessionsRepositoryWithCircuitBreaker) FindActive(ctx context.Context, orderID, locationID string) (*model.FulfillmentSession, error) {
	var result *model.FulfillmentSession
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindActive(ctx, orderID, locationID)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Create inserts a new session with circuit breaker protection.
func (r *SessionsRepositoryWithCircuitBreaker) Create(ctx context.Context, orderID, locationID string, parcelNumbers []int) (*model.FulfillmentSession, error) {
	var result *model.FulfillmentSession
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, orderID, locationID, parcelNumbers)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Save persists the session with circuit breaker protection.
func (r *SessionsRepositoryWithCircuitBreaker) Save(ctx context.Context, session *model.FulfillmentSession) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, session)
	})
}

// UpdateParcel records a parcel status with circuit breaker protection.
func (r *SessionsRepositoryWithCircuitBreaker) UpdateParcel(ctx context.Context, sessionID string, parcelNumber int, status model.ParcelStatus) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.UpdateParcel(ctx, sessionID, parcelNumber, status)
	})
}

// Complete marks the session completed with circuit breaker protection.
func (r *SessionsRepositoryWithCircuitBreaker) Complete(ctx context.Context, sessionID string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Complete(ctx, sessionID)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *SessionsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
