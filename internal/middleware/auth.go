package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/fulfillment-service/internal/domain/dto"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth validates the API key from the X-API-Key header, falling back
// to the api_key query parameter. An empty validKeys set disables the check.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		message := ""
		switch {
		case key == "":
			message = "API key is required"
		case !validKeys[key]:
			message = "Invalid API key"
		}

		if message != "" {
			resp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
			return
		}

		c.Next()
	}
}
