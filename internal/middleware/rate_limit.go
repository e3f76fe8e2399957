package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects requests over the configured throughput with 429.
// A nil limiter passes everything through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter != nil && !m.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
