package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// SessionsRepository persists fulfillment sessions in MongoDB.
type SessionsRepository struct {
	collection *mongo.Collection
}

// NewSessionsRepository creates a new sessions repository.
func NewSessionsRepository(db *MongoDB) *SessionsRepository {
	return &SessionsRepository{
		collection: db.Sessions,
	}
}

// FindActive returns the most recent non-completed session for the
// (order, location) pair, or nil when none exists.
func (r *SessionsRepository) FindActive(ctx context.Context, orderID, locationID string) (*model.FulfillmentSession, error) {
	filter := bson.M{
		"order_id":    orderID,
		"location_id": locationID,
		"completed":   false,
	}
	findOptions := options.FindOne().SetSort(bson.M{"created_at": -1})

	var session model.FulfillmentSession
	err := r.collection.FindOne(ctx, filter, findOptions).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Create inserts a new session tracking the given parcel numbers as pending.
func (r *SessionsRepository) Create(ctx context.Context, orderID, locationID string, parcelNumbers []int) (*model.FulfillmentSession, error) {
	now := time.Now()
	parcels := make(map[string]model.ParcelStatus, len(parcelNumbers))
	for _, n := range parcelNumbers {
		parcels[model.ParcelKey(n)] = model.ParcelPending
	}

	session := &model.FulfillmentSession{
		ID:         primitive.NewObjectID(),
		SessionID:  uuid.New().String(),
		OrderID:    orderID,
		LocationID: locationID,
		Parcels:    parcels,
		Completed:  false,
		Attempts:   1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := r.collection.InsertOne(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Save persists the full session document.
func (r *SessionsRepository) Save(ctx context.Context, session *model.FulfillmentSession) error {
	session.UpdatedAt = time.Now()

	filter := bson.M{"session_id": session.SessionID}
	update := bson.M{"$set": bson.M{
		"parcels":    session.Parcels,
		"completed":  session.Completed,
		"attempts":   session.Attempts,
		"updated_at": session.UpdatedAt,
	}}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// UpdateParcel records the commit status of one parcel.
func (r *SessionsRepository) UpdateParcel(ctx context.Context, sessionID string, parcelNumber int, status model.ParcelStatus) error {
	filter := bson.M{"session_id": sessionID}
	update := bson.M{"$set": bson.M{
		"parcels." + model.ParcelKey(parcelNumber): status,
		"updated_at": time.Now(),
	}}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

// Complete marks the session as completed.
func (r *SessionsRepository) Complete(ctx context.Context, sessionID string) error {
	filter := bson.M{"session_id": sessionID}
	update := bson.M{"$set": bson.M{
		"completed":  true,
		"updated_at": time.Now(),
	}}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}
