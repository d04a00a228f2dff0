package model

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParcelStatus is the commit status of one parcel within a submission.
type ParcelStatus string

const (
	// ParcelPending means no fulfillment request has succeeded for the parcel.
	ParcelPending ParcelStatus = "pending"
	// ParcelCommitted means the backend accepted the fulfillment request.
	ParcelCommitted ParcelStatus = "committed"
	// ParcelFailed means the last fulfillment request for the parcel failed.
	ParcelFailed ParcelStatus = "failed"
)

// FulfillmentSession records per-parcel commit status for one
// (order, location) submission so a retry after a partial failure only
// re-issues requests for parcels that are not yet committed.
type FulfillmentSession struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID  string             `bson:"session_id" json:"session_id"`
	OrderID    string             `bson:"order_id" json:"order_id"`
	LocationID string             `bson:"location_id" json:"location_id"`
	// Parcels maps the parcel number (as a string, for BSON keys) to status.
	Parcels   map[string]ParcelStatus `bson:"parcels" json:"parcels"`
	Completed bool                    `bson:"completed" json:"completed"`
	Attempts  int                     `bson:"attempts" json:"attempts"`
	CreatedAt time.Time               `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time               `bson:"updated_at" json:"updated_at"`
}

// Status returns the status recorded for a parcel number, defaulting to
// pending for parcels the session has not seen.
func (s *FulfillmentSession) Status(parcelNumber int) ParcelStatus {
	if s == nil || s.Parcels == nil {
		return ParcelPending
	}
	if status, ok := s.Parcels[ParcelKey(parcelNumber)]; ok {
		return status
	}
	return ParcelPending
}

// IsCommitted reports whether the parcel has already been committed
// server-side in an earlier attempt.
func (s *FulfillmentSession) IsCommitted(parcelNumber int) bool {
	return s.Status(parcelNumber) == ParcelCommitted
}

// AllCommitted reports whether every tracked parcel is committed.
func (s *FulfillmentSession) AllCommitted() bool {
	if s == nil || len(s.Parcels) == 0 {
		return false
	}
	for _, status := range s.Parcels {
		if status != ParcelCommitted {
			return false
		}
	}
	return true
}

// ParcelKey converts a parcel number to its session map key.
func ParcelKey(parcelNumber int) string {
	return strconv.Itoa(parcelNumber)
}
