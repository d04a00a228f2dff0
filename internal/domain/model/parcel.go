// Package model defines the core domain entities for the fulfillment service.
package model

import "sort"

// ShippingProfile describes the capacity constraint parcels are packed against.
//
// @Description Shipping profile with the capacity limit per parcel
// @Example {"id": "sp_01", "name": "Standard", "capacity": 10, "capacity_unit": "kg"}
type ShippingProfile struct {
	ID   string `json:"id" bson:"id" example:"sp_01"`
	Name string `json:"name" bson:"name" example:"Standard"`
	// Capacity is the maximum capacity a single parcel may carry.
	Capacity float64 `json:"capacity" bson:"capacity" example:"10"`
	// CapacityUnit is the unit Capacity is expressed in (e.g. kg, m3).
	CapacityUnit string `json:"capacity_unit" bson:"capacity_unit" example:"kg"`
}

// ParcelItem is a line item assigned to a parcel.
type ParcelItem struct {
	// ItemID is the order line item identifier.
	ItemID   string `json:"item_id" bson:"item_id" example:"item_01"`
	Quantity int    `json:"quantity" bson:"quantity" example:"2"`
	// ProductName and VariantTitle describe the item for display.
	ProductName  string `json:"product_name" bson:"product_name" example:"Wool Sweater"`
	VariantTitle string `json:"variant_title,omitempty" bson:"variant_title,omitempty" example:"M / Blue"`
	Thumbnail    string `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	// CapacityPerUnit is the capacity one unit consumes; TotalCapacity is
	// CapacityPerUnit * Quantity.
	CapacityPerUnit float64 `json:"capacity_per_unit" bson:"capacity_per_unit" example:"0.5"`
	TotalCapacity   float64 `json:"total_capacity" bson:"total_capacity" example:"1"`
	// ProfileName is the name of the shipping profile the item belongs to.
	ProfileName string `json:"profile_name" bson:"profile_name" example:"Standard"`
}

// Parcel is a grouping of order line items destined for one shipping method.
//
// Parcel numbers start at 1 and are the stable ordering and selection key
// within a plan.
type Parcel struct {
	ParcelNumber       int             `json:"parcel_number" bson:"parcel_number" example:"1"`
	ShippingMethodID   string          `json:"shipping_method_id" bson:"shipping_method_id" example:"sm_01"`
	ShippingOptionID   string          `json:"shipping_option_id" bson:"shipping_option_id" example:"so_01"`
	ShippingOptionName string          `json:"shipping_option_name" bson:"shipping_option_name" example:"Express"`
	ShippingProfile    ShippingProfile `json:"shipping_profile" bson:"shipping_profile"`
	Items              []ParcelItem    `json:"items" bson:"items"`
	// TotalCapacity is the sum of item capacities in the parcel.
	TotalCapacity float64 `json:"total_capacity" bson:"total_capacity" example:"7"`
	// MinRequiredCapacity is the smallest profile capacity that could still
	// carry the parcel's largest indivisible item.
	MinRequiredCapacity float64 `json:"min_required_capacity" bson:"min_required_capacity" example:"3"`
	// FitsInMethod reports whether TotalCapacity is within the shipping
	// method's allowance.
	FitsInMethod bool `json:"fits_in_method" bson:"fits_in_method" example:"true"`
}

// ItemCount returns the number of line items in the parcel.
func (p Parcel) ItemCount() int {
	return len(p.Items)
}

// ParcelPlan is a parcel breakdown computed for one (order, location) pair.
// Plans are computed fresh per location selection and are never persisted.
type ParcelPlan struct {
	Parcels []Parcel `json:"parcels"`
}

// Empty reports whether the plan contains no parcels.
func (p ParcelPlan) Empty() bool {
	return len(p.Parcels) == 0
}

// Numbers returns the parcel numbers in ascending order.
func (p ParcelPlan) Numbers() []int {
	nums := make([]int, 0, len(p.Parcels))
	for _, parcel := range p.Parcels {
		nums = append(nums, parcel.ParcelNumber)
	}
	sort.Ints(nums)
	return nums
}

// ByNumber returns the parcel with the given number, or nil if absent.
func (p ParcelPlan) ByNumber(n int) *Parcel {
	for i := range p.Parcels {
		if p.Parcels[i].ParcelNumber == n {
			return &p.Parcels[i]
		}
	}
	return nil
}

// MethodCount returns the number of distinct shipping methods the plan spans.
func (p ParcelPlan) MethodCount() int {
	seen := make(map[string]struct{}, len(p.Parcels))
	for _, parcel := range p.Parcels {
		seen[parcel.ShippingMethodID] = struct{}{}
	}
	return len(seen)
}

// EmptyPlan returns a plan with a non-nil, empty parcel list.
func EmptyPlan() ParcelPlan {
	return ParcelPlan{Parcels: []Parcel{}}
}
