package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/SscSPs/gl_gateway/internal/platform/session"
)

// contextKey is a private type for request-context keys.
// Using a custom type prevents collisions.
type contextKey string

const loggerCtxKey = contextKey("logger")

// GetSessionFromContext retrieves the authenticated session from the request context.
// It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (*session.Session, bool) {
	return session.FromContext(c.Request.Context())
}

// GetUserNameFromContext returns the ERP user name of the authenticated session.
func GetUserNameFromContext(c *gin.Context) (string, bool) {
	s, ok := GetSessionFromContext(c)
	if !ok {
		return "", false
	}
	return s.UserName, true
}
