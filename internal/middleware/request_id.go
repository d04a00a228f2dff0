// Package middleware provides HTTP middleware components for the fulfillment service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the HTTP header carrying the request correlation ID.
const RequestIDHeader = "X-Request-ID"

// ContextKey type for context keys to avoid collisions.
type ContextKey string

// RequestIDKey is the gin context key under which the request ID is stored.
const RequestIDKey ContextKey = "request_id"

// RequestID tags every request with a correlation ID. A client-supplied
// X-Request-ID is trusted as-is; otherwise a UUID v4 is minted. The ID is
// stored in the gin context and echoed back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(string(RequestIDKey), id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request ID for the current request, or "" when
// the RequestID middleware did not run.
func GetRequestID(c *gin.Context) string {
	v, ok := c.Get(string(RequestIDKey))
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
