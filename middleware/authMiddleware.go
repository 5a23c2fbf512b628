package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RenaRill/restaurant-order-system/helpers"
)

// ClaimsKey is where Authentication stores the parsed token claims in the
// gin context.
const ClaimsKey = "claims"

// Authentication extracts and validates the bearer token, if any, and sets
// the claims in the context. It never aborts: a missing or invalid token
// simply leaves the request anonymous, and the permission checks downstream
// decide what an anonymous caller may do.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("Authorization")
		if strings.HasPrefix(clientToken, "Bearer ") {
			clientToken = strings.TrimPrefix(clientToken, "Bearer ")
		} else if clientToken == "" {
			// Older clients send the raw token in a "token" header.
			clientToken = c.Request.Header.Get("token")
		}
		if clientToken == "" {
			c.Next()
			return
		}

		claims, err := helpers.ValidateToken(clientToken)
		if err != nil {
			c.Next()
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the claims stored by Authentication, or nil for an
// anonymous request.
func GetClaims(c *gin.Context) *helpers.SignedDetails {
	value, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*helpers.SignedDetails)
	if !ok {
		return nil
	}
	return claims
}
