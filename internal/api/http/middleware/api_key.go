package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-API-Key"

// APIKeyMiddleware rejects any request whose X-API-Key header does not match
// the configured pre-shared key. It runs before any store access.
func APIKeyMiddleware(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(apiKeyHeader)

		if key == "" || key != expected {
			c.Header("WWW-Authenticate", "API Key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "invalid or missing API key",
			})
			return
		}

		c.Next()
	}
}
