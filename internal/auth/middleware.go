package auth

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/palmview/hotel-booking-web/internal/user"
)

// Resolver owns the session cookie: it rehydrates sessions on every request
// and is the only component that writes or clears persisted auth state.
type Resolver struct {
	service    Service
	codec      *SessionCodec
	cookieName string
	secure     bool
	logger     *zap.Logger
}

// NewResolver creates a session resolver.
func NewResolver(service Service, codec *SessionCodec, cookieName string, secure bool, logger *zap.Logger) *Resolver {
	return &Resolver{
		service:    service,
		codec:      codec,
		cookieName: cookieName,
		secure:     secure,
		logger:     logger,
	}
}

// Sessions is a Gin middleware that resolves the session cookie into a
// Session on the request context. Anonymous requests pass through untouched.
func (r *Resolver) Sessions() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(r.cookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		token, cached, err := r.codec.Decode(raw)
		if err != nil {
			// Tampered or expired cookie: drop all persisted auth state.
			r.ClearSession(c)
			c.Next()
			return
		}

		result := Bootstrap(c.Request.Context(), r.service, token, cached)
		if result.ClearPersisted {
			r.ClearSession(c)
			c.Next()
			return
		}

		if result.Session != nil {
			if !result.Session.Verified {
				r.logger.Warn("serving cached identity, backend verification failed",
					zap.String("user_id", result.Session.User.ID),
				)
			}
			c.Set(sessionKey, result.Session)
		}

		c.Next()
	}
}

// SaveSession persists a fresh token and user record into the session cookie
// and exposes the session to the rest of the current request.
func (r *Resolver) SaveSession(c *gin.Context, token string, u *user.User) error {
	value, err := r.codec.Encode(token, u)
	if err != nil {
		return err
	}

	maxAge := int(r.codec.TTL().Seconds())
	c.SetCookie(r.cookieName, value, maxAge, "/", "", r.secure, true)
	c.Set(sessionKey, &Session{User: u, Token: token, Verified: true})
	return nil
}

// ClearSession drops the session cookie and the request-scoped session.
// Purely local, no backend call.
func (r *Resolver) ClearSession(c *gin.Context) {
	c.SetCookie(r.cookieName, "", -1, "/", "", r.secure, true)
	c.Set(sessionKey, (*Session)(nil))
}

// RequireUser redirects anonymous visitors to the login page, remembering
// where they were headed.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/login?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin sends anonymous visitors to the login page and non-admin
// users back to the home page. It MUST run after Sessions.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := CurrentSession(c)
		if s == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if !s.IsAdmin() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
