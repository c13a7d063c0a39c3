package middleware

import (
	"github.com/ErlanBelekov/task-tracker/internal/requestid"
	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates X-Request-ID through the request context and echoes it
// back. Missing or malformed ids are replaced with a new UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := requestid.Accept(c.GetHeader(requestIDHeader))

		c.Request = c.Request.WithContext(requestid.WithRequestID(c.Request.Context(), id))
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
