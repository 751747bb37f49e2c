// Package middleware contains gin middleware for the HTTP API.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/model"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "session_token"

// Authenticator validates session tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) error
}

// Authenticate rejects requests that do not carry a valid session.
func Authenticate(auth Authenticator, l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.Authenticate(c.Request.Context(), TokenFromRequest(c)); err != nil {
			var authErr *model.AuthenticationError
			if errors.As(err, &authErr) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
				return
			}
			l.Error("Auth middleware: session check failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.Next()
	}
}

// TokenFromRequest reads the session token from the session cookie,
// falling back to a bearer Authorization header.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}
	return strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
}
