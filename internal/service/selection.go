package service

import (
	"sort"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// ParcelSelection tracks which parcels are selected for fulfillment.
//
// The zero value is an empty selection with multi-parcel mode disengaged.
// Selections are per-submission state owned by a single caller; they are
// not safe for concurrent mutation and are never persisted.
type ParcelSelection struct {
	selected   map[int]struct{}
	useParcels bool
}

// NewSelection returns an empty selection.
func NewSelection() *ParcelSelection {
	return &ParcelSelection{selected: make(map[int]struct{})}
}

// DefaultSelection initializes a selection for a freshly computed plan.
//
// When the plan has more than one parcel, or the order carries more than
// one shipping method, every parcel number is selected and multi-parcel
// mode is engaged. Otherwise only parcel 1 is selected and the mode is
// left disengaged.
func DefaultSelection(plan model.ParcelPlan, shippingMethodCount int) *ParcelSelection {
	s := NewSelection()
	if plan.Empty() {
		return s
	}

	if len(plan.Parcels) > 1 || shippingMethodCount > 1 {
		for _, n := range plan.Numbers() {
			s.selected[n] = struct{}{}
		}
		s.useParcels = true
		return s
	}

	s.selected[1] = struct{}{}
	return s
}

// SelectionFromNumbers builds a selection from explicit parcel numbers.
func SelectionFromNumbers(numbers []int, useParcels bool) *ParcelSelection {
	s := NewSelection()
	s.useParcels = useParcels
	for _, n := range numbers {
		s.selected[n] = struct{}{}
	}
	return s
}

// Toggle adds the parcel number if absent and removes it if present.
// Toggling a number that matches no parcel is tolerated; it becomes a
// no-op at submit time.
func (s *ParcelSelection) Toggle(parcelNumber int) {
	if _, ok := s.selected[parcelNumber]; ok {
		delete(s.selected, parcelNumber)
		return
	}
	s.selected[parcelNumber] = struct{}{}
}

// IsSelected reports whether the parcel number is selected.
func (s *ParcelSelection) IsSelected(parcelNumber int) bool {
	_, ok := s.selected[parcelNumber]
	return ok
}

// Numbers returns the selected parcel numbers in ascending order.
func (s *ParcelSelection) Numbers() []int {
	nums := make([]int, 0, len(s.selected))
	for n := range s.selected {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Empty reports whether nothing is selected.
func (s *ParcelSelection) Empty() bool {
	return len(s.selected) == 0
}

// UseParcels reports whether multi-parcel mode is engaged.
func (s *ParcelSelection) UseParcels() bool {
	return s.useParcels
}

// Filter returns the plan's parcels whose numbers are selected, in
// ascending parcel-number order. Selected numbers without a matching
// parcel are ignored.
func (s *ParcelSelection) Filter(plan model.ParcelPlan) []model.Parcel {
	parcels := make([]model.Parcel, 0, len(s.selected))
	for _, n := range s.Numbers() {
		if p := plan.ByNumber(n); p != nil {
			parcels = append(parcels, *p)
		}
	}
	return parcels
}
