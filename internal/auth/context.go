package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/palmview/hotel-booking-web/internal/user"
)

const sessionKey = "session"

// CurrentSession returns the resolved session for this request, or nil.
func CurrentSession(c *gin.Context) *Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return nil
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(c *gin.Context) *user.User {
	if s := CurrentSession(c); s != nil {
		return s.User
	}
	return nil
}

// Token returns the backend bearer token for this request or empty string.
func Token(c *gin.Context) string {
	if s := CurrentSession(c); s != nil {
		return s.Token
	}
	return ""
}
