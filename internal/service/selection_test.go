package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/service"
)

func planWithParcels(numbers ...int) model.ParcelPlan {
	plan := model.EmptyPlan()
	for _, n := range numbers {
		plan.Parcels = append(plan.Parcels, model.Parcel{ParcelNumber: n})
	}
	return plan
}

func TestDefaultSelection(t *testing.T) {
	tests := []struct {
		name                string
		plan                model.ParcelPlan
		shippingMethodCount int
		expectedNumbers     []int
		expectedUseParcels  bool
	}{
		{
			name:                "empty plan selects nothing",
			plan:                model.EmptyPlan(),
			shippingMethodCount: 1,
			expectedNumbers:     []int{},
			expectedUseParcels:  false,
		},
		{
			name:                "single parcel single method selects parcel 1 without engaging mode",
			plan:                planWithParcels(1),
			shippingMethodCount: 1,
			expectedNumbers:     []int{1},
			expectedUseParcels:  false,
		},
		{
			name:                "multiple parcels select all and engage mode",
			plan:                planWithParcels(1, 2, 3),
			shippingMethodCount: 1,
			expectedNumbers:     []int{1, 2, 3},
			expectedUseParcels:  true,
		},
		{
			name:                "single parcel with multiple methods engages mode",
			plan:                planWithParcels(1),
			shippingMethodCount: 2,
			expectedNumbers:     []int{1},
			expectedUseParcels:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := service.DefaultSelection(tt.plan, tt.shippingMethodCount)

			assert.Equal(t, tt.expectedNumbers, sel.Numbers())
			assert.Equal(t, tt.expectedUseParcels, sel.UseParcels())
		})
	}
}

func TestParcelSelection_Toggle(t *testing.T) {
	sel := service.NewSelection()

	sel.Toggle(2)
	assert.True(t, sel.IsSelected(2))

	sel.Toggle(2)
	assert.False(t, sel.IsSelected(2))
	assert.True(t, sel.Empty())

	// Toggling a number no parcel carries is tolerated.
	sel.Toggle(99)
	assert.True(t, sel.IsSelected(99))
}

func TestSelectionFromNumbers(t *testing.T) {
	sel := service.SelectionFromNumbers([]int{3, 1, 2}, true)

	assert.Equal(t, []int{1, 2, 3}, sel.Numbers())
	assert.True(t, sel.UseParcels())
	assert.False(t, sel.Empty())
}

func TestParcelSelection_Filter(t *testing.T) {
	plan := planWithParcels(1, 2, 3)

	tests := []struct {
		name            string
		numbers         []int
		expectedNumbers []int
	}{
		{
			name:            "returns selected parcels in ascending order",
			numbers:         []int{3, 1},
			expectedNumbers: []int{1, 3},
		},
		{
			name:            "stale numbers are ignored",
			numbers:         []int{2, 7},
			expectedNumbers: []int{2},
		},
		{
			name:            "all stale yields nothing",
			numbers:         []int{8, 9},
			expectedNumbers: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := service.SelectionFromNumbers(tt.numbers, true)
			parcels := sel.Filter(plan)

			got := make([]int, 0, len(parcels))
			for _, p := range parcels {
				got = append(got, p.ParcelNumber)
			}
			assert.Equal(t, tt.expectedNumbers, got)
		})
	}
}
