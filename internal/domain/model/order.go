package model

// LineItem is an order line item as returned by the marketplace backend.
type LineItem struct {
	ID           string `json:"id" example:"item_01"`
	ProductName  string `json:"product_name" example:"Wool Sweater"`
	VariantTitle string `json:"variant_title,omitempty" example:"M / Blue"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	Quantity     int    `json:"quantity" example:"3"`
	// FulfilledQuantity is how many units have already been fulfilled.
	FulfilledQuantity int  `json:"fulfilled_quantity" example:"1"`
	RequiresShipping  bool `json:"requires_shipping" example:"true"`
	// ShippingProfileID associates the item's product with a shipping profile.
	ShippingProfileID string  `json:"shipping_profile_id" example:"sp_01"`
	CapacityPerUnit   float64 `json:"capacity_per_unit" example:"0.5"`
}

// FulfillableQuantity returns the unfulfilled quantity of the item,
// never negative.
func (i LineItem) FulfillableQuantity() int {
	q := i.Quantity - i.FulfilledQuantity
	if q < 0 {
		return 0
	}
	return q
}

// ShippingMethod is a shipping method attached to an order.
type ShippingMethod struct {
	ID               string `json:"id" example:"sm_01"`
	ShippingOptionID string `json:"shipping_option_id" example:"so_01"`
	Name             string `json:"name" example:"Express"`
}

// ShippingOption is a purchasable shipping option, bound to a profile.
type ShippingOption struct {
	ID              string          `json:"id" example:"so_01"`
	Name            string          `json:"name" example:"Express"`
	ShippingProfile ShippingProfile `json:"shipping_profile"`
}

// Order is the subset of the backend order the fulfillment flow needs.
type Order struct {
	ID              string           `json:"id" example:"order_01"`
	DisplayID       int              `json:"display_id,omitempty" example:"1042"`
	Items           []LineItem       `json:"items"`
	ShippingMethods []ShippingMethod `json:"shipping_methods"`
}

// ShippableItems returns items that require shipping and still have
// unfulfilled quantity.
func (o Order) ShippableItems() []LineItem {
	items := make([]LineItem, 0, len(o.Items))
	for _, item := range o.Items {
		if item.RequiresShipping && item.FulfillableQuantity() > 0 {
			items = append(items, item)
		}
	}
	return items
}

// MethodForProfile returns the shipping method whose option is bound to the
// given profile, falling back to the order's first method when none matches.
func (o Order) MethodForProfile(profileID string, options map[string]ShippingOption) (ShippingMethod, bool) {
	for _, sm := range o.ShippingMethods {
		if opt, ok := options[sm.ShippingOptionID]; ok && opt.ShippingProfile.ID == profileID {
			return sm, true
		}
	}
	if len(o.ShippingMethods) > 0 {
		return o.ShippingMethods[0], false
	}
	return ShippingMethod{}, false
}

// StockLocation is a fulfillment location.
type StockLocation struct {
	ID   string `json:"id" example:"loc_01"`
	Name string `json:"name" example:"Berlin Warehouse"`
}

// InventoryLevel is the availability of one item at one location.
type InventoryLevel struct {
	ItemID     string `json:"item_id" example:"item_01"`
	LocationID string `json:"location_id" example:"loc_01"`
	// Available is stocked minus reserved quantity at the location.
	Available int `json:"available" example:"12"`
}
