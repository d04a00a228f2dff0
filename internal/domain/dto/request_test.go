package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateFulfillmentsRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       CreateFulfillmentsRequest
		expectedError error
	}{
		{
			name: "valid multi-parcel request",
			request: CreateFulfillmentsRequest{
				LocationID: "loc_01",
				UseParcels: true,
				Parcels:    []int{1, 2},
			},
		},
		{
			name: "valid legacy request",
			request: CreateFulfillmentsRequest{
				LocationID:       "loc_01",
				ShippingOptionID: "so_01",
				Quantities:       map[string]int{"item_01": 2},
			},
		},
		{
			name:          "missing location",
			request:       CreateFulfillmentsRequest{UseParcels: true, Parcels: []int{1}},
			expectedError: ErrLocationRequired,
		},
		{
			name: "negative quantity",
			request: CreateFulfillmentsRequest{
				LocationID:       "loc_01",
				ShippingOptionID: "so_01",
				Quantities:       map[string]int{"item_01": -1},
			},
			expectedError: ErrNegativeQuantity,
		},
		{
			name: "zero quantities are tolerated",
			request: CreateFulfillmentsRequest{
				LocationID:       "loc_01",
				ShippingOptionID: "so_01",
				Quantities:       map[string]int{"item_01": 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "location_id", Message: "a fulfillment location is required"}
	assert.Equal(t, "location_id: a fulfillment location is required", err.Error())
}
