package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/shop-service/internal/apperrors"
	"github.com/yashrajoria/shop-service/internal/services"
)

// Context keys set by RequireSession.
const (
	ContextUserID       = "userID"
	ContextUsername     = "username"
	ContextSessionToken = "sessionToken"
)

const (
	SessionCookieName  = "session_token"
	SessionTokenHeader = "X-Session-Token"
)

// TokenFromRequest returns the session token from the Authorization bearer
// header, the X-Session-Token header or the session cookie, in that order.
func TokenFromRequest(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok && strings.TrimSpace(token) != "" {
			return strings.TrimSpace(token)
		}
	}
	if token := strings.TrimSpace(c.GetHeader(SessionTokenHeader)); token != "" {
		return token
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// RequireSession rejects requests without a live session with 403.
func RequireSession(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		sess, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			appErr := apperrors.From(err)
			c.AbortWithStatusJSON(appErr.Code, gin.H{"detail": appErr.Message})
			return
		}

		c.Set(ContextUserID, sess.UserID)
		c.Set(ContextUsername, sess.Username)
		c.Set(ContextSessionToken, token)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID. Handlers behind
// RequireSession can rely on ok being true.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// AbortUnauthenticated writes the standard 403 body.
func AbortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Not authenticated"})
}
