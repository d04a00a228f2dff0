package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineItem_FulfillableQuantity(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want int
	}{
		{
			name: "nothing fulfilled",
			item: LineItem{Quantity: 3},
			want: 3,
		},
		{
			name: "partially fulfilled",
			item: LineItem{Quantity: 3, FulfilledQuantity: 1},
			want: 2,
		},
		{
			name: "fully fulfilled",
			item: LineItem{Quantity: 3, FulfilledQuantity: 3},
			want: 0,
		},
		{
			name: "over-fulfilled clamps to zero",
			item: LineItem{Quantity: 3, FulfilledQuantity: 5},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.FulfillableQuantity())
		})
	}
}

func TestOrder_ShippableItems(t *testing.T) {
	order := Order{
		Items: []LineItem{
			{ID: "item_a", Quantity: 2, RequiresShipping: true},
			{ID: "item_b", Quantity: 2, RequiresShipping: false},
			{ID: "item_c", Quantity: 2, FulfilledQuantity: 2, RequiresShipping: true},
		},
	}

	items := order.ShippableItems()

	assert.Len(t, items, 1)
	assert.Equal(t, "item_a", items[0].ID)
}

func TestOrder_ShippableItems_Empty(t *testing.T) {
	assert.Empty(t, Order{}.ShippableItems())
}

func TestOrder_MethodForProfile(t *testing.T) {
	order := Order{
		ShippingMethods: []ShippingMethod{
			{ID: "sm_01", ShippingOptionID: "so_01"},
			{ID: "sm_02", ShippingOptionID: "so_02"},
		},
	}
	options := map[string]ShippingOption{
		"so_01": {ID: "so_01", ShippingProfile: ShippingProfile{ID: "sp_01"}},
		"so_02": {ID: "so_02", ShippingProfile: ShippingProfile{ID: "sp_02"}},
	}

	t.Run("matching profile", func(t *testing.T) {
		method, matched := order.MethodForProfile("sp_02", options)

		assert.True(t, matched)
		assert.Equal(t, "sm_02", method.ID)
	})

	t.Run("unknown profile falls back to first method", func(t *testing.T) {
		method, matched := order.MethodForProfile("sp_99", options)

		assert.False(t, matched)
		assert.Equal(t, "sm_01", method.ID)
	})

	t.Run("order without methods", func(t *testing.T) {
		method, matched := Order{}.MethodForProfile("sp_01", options)

		assert.False(t, matched)
		assert.Empty(t, method.ID)
	})
}
