package service

import (
	"sort"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// ParcelPlanner defines the interface for parcel breakdown computation.
type ParcelPlanner interface {
	// Plan computes the parcel breakdown for an order at a location.
	// Every line item that requires shipping and has unfulfilled quantity
	// available at the location appears in exactly one parcel.
	Plan(order model.Order, options map[string]model.ShippingOption, levels map[string]model.InventoryLevel) model.ParcelPlan
}

// PlannerOption configures a PlannerService.
type PlannerOption func(*PlannerService)

// WithDefaultCapacity sets the capacity used when a shipping profile
// reports none. Zero means unlimited parcels.
func WithDefaultCapacity(capacity float64) PlannerOption {
	return func(s *PlannerService) {
		s.defaultCapacity = capacity
	}
}

// PlannerService implements ParcelPlanner.
//
// Items are grouped by shipping profile, bound to the order shipping method
// whose option covers that profile, and packed into parcels first-fit
// decreasing against the profile capacity. Line items are atomic: an item's
// whole unfulfilled quantity lands in one parcel, so an oversized item
// yields a parcel with FitsInMethod=false rather than being split.
type PlannerService struct {
	defaultCapacity float64
}

// NewPlannerService creates a new PlannerService with the given options.
func NewPlannerService(opts ...PlannerOption) *PlannerService {
	s := &PlannerService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// plannableItem is a shippable line item with its clamped quantity.
type plannableItem struct {
	item     model.LineItem
	quantity int
}

// profileGroup collects the items bound to one shipping profile.
type profileGroup struct {
	profile model.ShippingProfile
	method  model.ShippingMethod
	option  model.ShippingOption
	items   []plannableItem
}

// Plan computes the parcel breakdown for an order at a location.
func (s *PlannerService) Plan(order model.Order, options map[string]model.ShippingOption, levels map[string]model.InventoryLevel) model.ParcelPlan {
	items := s.plannableItems(order, levels)
	if len(items) == 0 {
		return model.EmptyPlan()
	}

	groups := s.groupByProfile(order, options, items)

	plan := model.EmptyPlan()
	number := 1
	for _, group := range groups {
		parcels := packGroup(group, s.defaultCapacity)
		for i := range parcels {
			parcels[i].ParcelNumber = number
			number++
		}
		plan.Parcels = append(plan.Parcels, parcels...)
	}
	return plan
}

// plannableItems filters to requires-shipping items with unfulfilled
// quantity, clamped by availability at the location. Items with no stock
// record are assumed fulfillable; items clamped to zero are excluded.
func (s *PlannerService) plannableItems(order model.Order, levels map[string]model.InventoryLevel) []plannableItem {
	shippable := order.ShippableItems()
	items := make([]plannableItem, 0, len(shippable))
	for _, item := range shippable {
		qty := item.FulfillableQuantity()
		if level, ok := levels[item.ID]; ok && level.Available < qty {
			qty = level.Available
		}
		if qty <= 0 {
			continue
		}
		items = append(items, plannableItem{item: item, quantity: qty})
	}
	return items
}

// groupByProfile buckets items by shipping profile in the stable order the
// profiles first appear on the order's items.
func (s *PlannerService) groupByProfile(order model.Order, options map[string]model.ShippingOption, items []plannableItem) []*profileGroup {
	byProfile := make(map[string]*profileGroup)
	ordered := make([]*profileGroup, 0, 2)

	for _, pi := range items {
		profileID := pi.item.ShippingProfileID
		group, ok := byProfile[profileID]
		if !ok {
			group = s.newGroup(order, options, profileID)
			byProfile[profileID] = group
			ordered = append(ordered, group)
		}
		group.items = append(group.items, pi)
	}
	return ordered
}

// newGroup resolves the shipping method, option, and profile for a profile ID.
func (s *PlannerService) newGroup(order model.Order, options map[string]model.ShippingOption, profileID string) *profileGroup {
	group := &profileGroup{
		profile: model.ShippingProfile{ID: profileID, Capacity: s.defaultCapacity},
	}

	method, matched := order.MethodForProfile(profileID, options)
	group.method = method
	if opt, ok := options[method.ShippingOptionID]; ok {
		group.option = opt
		if matched {
			group.profile = opt.ShippingProfile
		}
		if group.profile.Capacity <= 0 {
			group.profile.Capacity = s.defaultCapacity
		}
	}
	return group
}

// packGroup packs a profile group's items into parcels using first-fit
// decreasing on total item capacity.
func packGroup(group *profileGroup, defaultCapacity float64) []model.Parcel {
	capacity := group.profile.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	items := make([]plannableItem, len(group.items))
	copy(items, group.items)
	sort.SliceStable(items, func(i, j int) bool {
		return itemCapacity(items[i]) > itemCapacity(items[j])
	})

	var parcels []model.Parcel
	for _, pi := range items {
		weight := itemCapacity(pi)
		placed := false

		if capacity > 0 {
			for i := range parcels {
				if parcels[i].TotalCapacity+weight <= capacity {
					addItem(&parcels[i], pi, group)
					placed = true
					break
				}
			}
		} else if len(parcels) > 0 {
			// No capacity limit: everything rides in one parcel.
			addItem(&parcels[0], pi, group)
			placed = true
		}

		if !placed {
			parcel := newParcel(group)
			addItem(&parcel, pi, group)
			parcels = append(parcels, parcel)
		}
	}

	for i := range parcels {
		finalizeParcel(&parcels[i], capacity)
	}
	return parcels
}

// itemCapacity is the capacity the whole line item consumes.
func itemCapacity(pi plannableItem) float64 {
	return float64(pi.quantity) * pi.item.CapacityPerUnit
}

// newParcel starts an empty parcel bound to the group's method and profile.
func newParcel(group *profileGroup) model.Parcel {
	return model.Parcel{
		ShippingMethodID:   group.method.ID,
		ShippingOptionID:   group.method.ShippingOptionID,
		ShippingOptionName: group.method.Name,
		ShippingProfile:    group.profile,
		Items:              []model.ParcelItem{},
	}
}

// addItem appends a line item to a parcel and updates its running totals.
func addItem(parcel *model.Parcel, pi plannableItem, group *profileGroup) {
	total := itemCapacity(pi)
	parcel.Items = append(parcel.Items, model.ParcelItem{
		ItemID:          pi.item.ID,
		Quantity:        pi.quantity,
		ProductName:     pi.item.ProductName,
		VariantTitle:    pi.item.VariantTitle,
		Thumbnail:       pi.item.Thumbnail,
		CapacityPerUnit: pi.item.CapacityPerUnit,
		TotalCapacity:   total,
		ProfileName:     group.profile.Name,
	})
	parcel.TotalCapacity += total
	if total > parcel.MinRequiredCapacity {
		parcel.MinRequiredCapacity = total
	}
}

// finalizeParcel computes the fit flag once all items are assigned.
func finalizeParcel(parcel *model.Parcel, capacity float64) {
	parcel.FitsInMethod = capacity <= 0 || parcel.TotalCapacity <= capacity
}
