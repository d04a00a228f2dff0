// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// CreateFulfillmentsRequest is the JSON request body for the fulfillment
// submission endpoint.
//
// When UseParcels is true the submission runs in multi-parcel mode:
// one fulfillment is created per selected parcel number. Otherwise the
// legacy single-parcel path is used, which requires a shipping option and
// per-item quantities.
//
// @Description Request to create fulfillments for an order at a location
// @Example {"location_id": "loc_01", "use_parcels": true, "parcels": [1, 2]}
// @Example {"location_id": "loc_01", "shipping_option_id": "so_01", "quantities": {"item_01": 2}}
type CreateFulfillmentsRequest struct {
	// LocationID is the stock location to fulfill from. Required.
	LocationID string `json:"location_id" binding:"required" example:"loc_01"`
	// UseParcels engages multi-parcel mode.
	UseParcels bool `json:"use_parcels" example:"true"`
	// Parcels lists the selected parcel numbers (multi-parcel mode).
	Parcels []int `json:"parcels,omitempty" example:"1,2"`
	// ShippingOptionID selects the shipping option (legacy mode).
	ShippingOptionID string `json:"shipping_option_id,omitempty" example:"so_01"`
	// Quantities maps line item IDs to the quantity to fulfill (legacy mode).
	Quantities map[string]int `json:"quantities,omitempty"`
} // @name CreateFulfillmentsRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrLocationRequired is returned when location_id is missing.
	ErrLocationRequired = &ValidationError{
		Field:   "location_id",
		Message: "a fulfillment location is required",
	}

	// ErrNegativeQuantity is returned when a legacy quantity is negative.
	ErrNegativeQuantity = &ValidationError{
		Field:   "quantities",
		Message: "quantities must not be negative",
	}
)

// Validate performs custom validation on the request.
// Mode-specific preconditions (parcel selection, shipping option, item set)
// are enforced by the orchestrator once the submission mode is resolved.
func (r *CreateFulfillmentsRequest) Validate() error {
	if r.LocationID == "" {
		return ErrLocationRequired
	}
	for _, q := range r.Quantities {
		if q < 0 {
			return ErrNegativeQuantity
		}
	}
	return nil
}
