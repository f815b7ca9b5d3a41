package middleware

import (
	"net/http"
	"strings"

	"github.com/RohitDev96/profile/helpers"

	"github.com/gin-gonic/gin"
)

// Authenticate guards mutating endpoints with a bearer token when enabled.
// The public deployment runs with enabled=false and behaves as an open API.
func Authenticate(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "missing bearer token"})
			return
		}

		claims, err := helpers.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": "invalid token"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
