package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/repository"
)

// SessionStore tracks per-parcel commit status across submission attempts
// for one (order, location) pair, so retries after a partial failure only
// re-issue requests for parcels that are not yet committed.
type SessionStore interface {
	// GetOrCreate returns the active session for the pair, creating one
	// tracking the given parcel numbers if none exists. Numbers not yet
	// tracked by an existing session are added as pending.
	GetOrCreate(ctx context.Context, orderID, locationID string, parcelNumbers []int) (*model.FulfillmentSession, error)
	// Find returns the active session for the pair, or nil.
	Find(ctx context.Context, orderID, locationID string) (*model.FulfillmentSession, error)
	// MarkParcel records the commit status of one parcel.
	MarkParcel(ctx context.Context, session *model.FulfillmentSession, parcelNumber int, status model.ParcelStatus) error
	// Complete closes the session once every tracked parcel is committed.
	Complete(ctx context.Context, session *model.FulfillmentSession) error
}

// SessionService is the MongoDB-backed SessionStore.
type SessionService struct {
	repo repository.SessionsRepositoryInterface
}

// NewSessionService creates a new session service.
func NewSessionService(repo repository.SessionsRepositoryInterface) *SessionService {
	return &SessionService{repo: repo}
}

// GetOrCreate returns the active session for the pair, creating one if needed.
func (s *SessionService) GetOrCreate(ctx context.Context, orderID, locationID string, parcelNumbers []int) (*model.FulfillmentSession, error) {
	session, err := s.repo.FindActive(ctx, orderID, locationID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return s.repo.Create(ctx, orderID, locationID, parcelNumbers)
	}

	// A retry may select parcels the first attempt did not track.
	changed := false
	for _, n := range parcelNumbers {
		key := model.ParcelKey(n)
		if _, ok := session.Parcels[key]; !ok {
			if session.Parcels == nil {
				session.Parcels = make(map[string]model.ParcelStatus)
			}
			session.Parcels[key] = model.ParcelPending
			changed = true
		}
	}
	session.Attempts++
	if changed {
		if err := s.repo.Save(ctx, session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// Find returns the active session for the pair, or nil.
func (s *SessionService) Find(ctx context.Context, orderID, locationID string) (*model.FulfillmentSession, error) {
	return s.repo.FindActive(ctx, orderID, locationID)
}

// MarkParcel records the commit status of one parcel.
func (s *SessionService) MarkParcel(ctx context.Context, session *model.FulfillmentSession, parcelNumber int, status model.ParcelStatus) error {
	if session.Parcels == nil {
		session.Parcels = make(map[string]model.ParcelStatus)
	}
	session.Parcels[model.ParcelKey(parcelNumber)] = status
	return s.repo.UpdateParcel(ctx, session.SessionID, parcelNumber, status)
}

// Complete closes the session.
func (s *SessionService) Complete(ctx context.Context, session *model.FulfillmentSession) error {
	session.Completed = true
	return s.repo.Complete(ctx, session.SessionID)
}

// MemorySessionStore is an in-memory SessionStore used when MongoDB is
// disabled. Commit tracking then survives process lifetime only.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*model.FulfillmentSession
}

// NewMemorySessionStore creates an in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*model.FulfillmentSession),
	}
}

func sessionKey(orderID, locationID string) string {
	return orderID + ":" + locationID
}

// GetOrCreate returns the active session for the pair, creating one if needed.
func (s *MemorySessionStore) GetOrCreate(_ context.Context, orderID, locationID string, parcelNumbers []int) (*model.FulfillmentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey(orderID, locationID)
	session, ok := s.sessions[key]
	if !ok || session.Completed {
		session = &model.FulfillmentSession{
			SessionID:  uuid.New().String(),
			OrderID:    orderID,
			LocationID: locationID,
			Parcels:    make(map[string]model.ParcelStatus, len(parcelNumbers)),
			Attempts:   1,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		s.sessions[key] = session
	} else {
		session.Attempts++
	}

	for _, n := range parcelNumbers {
		pk := model.ParcelKey(n)
		if _, tracked := session.Parcels[pk]; !tracked {
			session.Parcels[pk] = model.ParcelPending
		}
	}
	return session, nil
}

// Find returns the active session for the pair, or nil.
func (s *MemorySessionStore) Find(_ context.Context, orderID, locationID string) (*model.FulfillmentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionKey(orderID, locationID)]
	if !ok || session.Completed {
		return nil, nil
	}
	return session, nil
}

// MarkParcel records the commit status of one parcel.
func (s *MemorySessionStore) MarkParcel(_ context.Context, session *model.FulfillmentSession, parcelNumber int, status model.ParcelStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.Parcels == nil {
		session.Parcels = make(map[string]model.ParcelStatus)
	}
	session.Parcels[model.ParcelKey(parcelNumber)] = status
	session.UpdatedAt = time.Now()
	return nil
}

// Complete closes the session.
func (s *MemorySessionStore) Complete(_ context.Context, session *model.FulfillmentSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.Completed = true
	session.UpdatedAt = time.Now()
	delete(s.sessions, sessionKey(session.OrderID, session.LocationID))
	return nil
}
