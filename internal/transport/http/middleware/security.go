package middleware

import "github.com/gin-gonic/gin"

// Security sets common HTTP security headers on every response. API bodies
// can carry bearer tokens, so nothing is cacheable.
func Security() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		h.Set("Cache-Control", "no-store")
		c.Next()
	}
}
