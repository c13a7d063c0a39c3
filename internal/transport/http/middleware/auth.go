package middleware

import (
	"net/http"
	"strings"

	ctxlog "github.com/ErlanBelekov/task-tracker/internal/log"
	"github.com/gin-gonic/gin"
)

const errUnauthorized = "Unauthorized"

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "userID"

// TokenDecoder is satisfied by *token.JWTIssuer.
type TokenDecoder interface {
	DecodeToken(raw string) (string, error)
}

// Auth validates a Bearer token and sets UserIDKey in the gin context.
func Auth(tokens TokenDecoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		userID, err := tokens.DecodeToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		c.Set(UserIDKey, userID)
		c.Request = c.Request.WithContext(ctxlog.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}
