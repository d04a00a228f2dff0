package model

import "time"

// FulfillmentItem is one line of a fulfillment creation payload.
type FulfillmentItem struct {
	// ID is the order line item identifier.
	ID       string `json:"id" example:"item_01"`
	Quantity int    `json:"quantity" example:"2"`
}

// FulfillmentPayload is the body sent to the backend to create one
// fulfillment. No shipping option is sent; the backend infers shipping
// details from the order's shipping methods.
type FulfillmentPayload struct {
	LocationID       string            `json:"location_id" example:"loc_01"`
	RequiresShipping bool              `json:"requires_shipping" example:"true"`
	Items            []FulfillmentItem `json:"items"`
}

// Fulfillment is a fulfillment created by the backend.
type Fulfillment struct {
	ID         string            `json:"id" example:"ful_01"`
	OrderID    string            `json:"order_id" example:"order_01"`
	LocationID string            `json:"location_id" example:"loc_01"`
	Items      []FulfillmentItem `json:"items"`
	CreatedAt  time.Time         `json:"created_at"`
}
