package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	resp := NewError(ErrCodeInvalidRequest, "bad input")

	assert.Equal(t, ErrCodeInvalidRequest, resp.Error)
	assert.Equal(t, "bad input", resp.Message)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Empty(t, resp.RequestID)
}

func TestErrorResponse_WithRequestID(t *testing.T) {
	resp := NewError(ErrCodeInternal, "boom").WithRequestID("req-123")

	assert.Equal(t, "req-123", resp.RequestID)
}

func TestErrorResponse_WithDetail(t *testing.T) {
	resp := NewError(ErrCodeInvalidRequest, "validation failed").
		WithDetail("location_id", "a fulfillment location is required").
		WithDetail("failed_parcel", "2")

	assert.Len(t, resp.Details, 2)
	assert.Equal(t, "a fulfillment location is required", resp.Details["location_id"])
	assert.Equal(t, "2", resp.Details["failed_parcel"])
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusForbidden, ErrCodeForbidden},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusBadGateway, ErrCodeUpstream},
		{http.StatusServiceUnavailable, ErrCodeUpstream},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusTeapot, ErrCodeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ErrCodeFromStatus(tt.status), "status %d", tt.status)
	}
}
