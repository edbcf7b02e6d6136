package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"giftwise/logger"
	"giftwise/trace"
)

// RequestLogging emits one structured line per request after the handler
// chain finishes.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.InfoWithFields("http request completed", logger.Fields{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  trace.RequestIDFromContext(c.Request.Context()),
			"client_ip":   c.ClientIP(),
		})
	}
}
