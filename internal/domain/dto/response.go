package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUpstream indicates the marketplace backend rejected a request.
	ErrCodeUpstream = "upstream_error"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"location_id: a fulfillment location is required"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetail adds a field-level detail to the error response.
func (e ErrorResponse) WithDetail(field, message string) ErrorResponse {
	if e.Details == nil {
		e.Details = make(map[string]string, 1)
	}
	e.Details[field] = message
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return ErrCodeUpstream
	default:
		return ErrCodeInternal
	}
}

// ParcelPlanResponse is the payload of the parcel breakdown endpoint.
// An empty Parcels list signals the caller to fall back to legacy
// single-parcel mode.
// @Description Parcel breakdown for an order at a stock location
type ParcelPlanResponse struct {
	Parcels []model.Parcel `json:"parcels"`
	// DefaultSelected lists the parcel numbers the panel should preselect.
	DefaultSelected []int `json:"default_selected,omitempty" example:"1,2"`
	// UseParcels tells the panel whether to start in multi-parcel mode.
	UseParcels bool `json:"use_parcels" example:"true"`
	// Warning is set when the breakdown could not be computed and the
	// caller should fall back to legacy single-parcel mode.
	Warning string `json:"warning,omitempty"`
} // @name ParcelPlanResponse

// FulfillmentSessionResponse is the payload of the session inspection endpoint.
// @Description Commit-tracking state of the current submission session
type FulfillmentSessionResponse struct {
	SessionID string                        `json:"session_id,omitempty"`
	Active    bool                          `json:"active"`
	Parcels   map[string]model.ParcelStatus `json:"parcels,omitempty"`
	Attempts  int                           `json:"attempts,omitempty"`
} // @name FulfillmentSessionResponse

// FulfillmentResult summarizes a submission run.
// @Description Result of a fulfillment submission
type FulfillmentResult struct {
	// Created lists the fulfillments created during this submission, in
	// the order they were committed.
	Created []model.Fulfillment `json:"created"`
	// CommittedParcels lists parcel numbers committed across all attempts,
	// including earlier partially-failed ones (multi-parcel mode only).
	CommittedParcels []int `json:"committed_parcels,omitempty"`
	// SkippedParcels lists selected parcels skipped because an earlier
	// attempt already committed them (multi-parcel mode only).
	SkippedParcels []int `json:"skipped_parcels,omitempty"`
	// Message is a human-readable summary ("Created 3 fulfillments").
	Message string `json:"message"`
} // @name FulfillmentResult
