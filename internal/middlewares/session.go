package middlewares

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

const (
	SessionCookieName = "sessionId"
	SessionContextKey = "session_id"

	// seven days, mirrored by the create handler when minting a cookie
	SessionCookieMaxAge = 604800
)

type SessionMiddleware struct{}

func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// Handle rejects requests that carry no sessionId cookie. The cookie value
// is an opaque bearer token, not authentication: it is never checked against
// any account record.
func (m *SessionMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(SessionContextKey, sessionID)
		c.Next()
	}
}
