package middleware

import (
	"github.com/gin-gonic/gin"

	"giftwise/trace"
)

const HeaderRequestID = "X-Request-Id"

// RequestTrace seeds every request context with a request id (incoming
// X-Request-Id or a fresh one) and span counter, and echoes the id back on
// the response.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		ctx := trace.WithRequestAndSpan(c.Request.Context(), requestID, 0)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(HeaderRequestID, requestID)

		c.Next()
	}
}
