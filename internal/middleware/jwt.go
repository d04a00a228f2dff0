// Package middleware provides JWT authentication middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/fulfillment-service/internal/domain/dto"
)

// PanelClaims are the JWT claims issued to admin panel sessions.
type PanelClaims struct {
	VendorID string `json:"vendor_id,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuth returns a middleware that validates panel-issued JWT tokens.
// Tokens are stateless HMAC tokens; the panel's identity provider signs
// them with the shared secret.
func JWTAuth(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, "Authentication token is required").
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		// Extract token from "Bearer <token>"
		if !strings.HasPrefix(authHeader, "Bearer ") {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, "Invalid authentication token").
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, "Authentication token is required").
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		claims := &PanelClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		})
		if err != nil || !token.Valid {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, "Invalid authentication token").
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		c.Set("vendor_id", claims.VendorID)
		c.Set("vendor_email", claims.Email)

		c.Next()
	}
}
