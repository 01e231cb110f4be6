package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palmview/hotel-booking-web/internal/auth"
	"github.com/palmview/hotel-booking-web/internal/pkg/apperror"
	"github.com/palmview/hotel-booking-web/internal/pkg/view"
)

type Handler struct {
	service  auth.Service
	resolver *auth.Resolver
}

func NewHandler(service auth.Service, resolver *auth.Resolver) *Handler {
	return &Handler{
		service:  service,
		resolver: resolver,
	}
}

func (h *Handler) ShowLogin(c *gin.Context) {
	if auth.CurrentSession(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.tmpl", view.Data(c, gin.H{
		"Next": c.Query("next"),
	}))
}

func (h *Handler) Login(c *gin.Context) {
	creds := auth.Credentials{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	result, err := h.service.Login(c.Request.Context(), creds)
	if err != nil {
		// Failed logins leave the session untouched; the backend message is
		// shown as-is and the user re-prompted.
		c.HTML(view.StatusOf(err), "login.tmpl", view.Data(c, gin.H{
			"Error": view.ErrorMessage(err),
			"Email": creds.Email,
			"Next":  c.PostForm("next"),
		}))
		return
	}

	if err := h.resolver.SaveSession(c, result.Token, &result.User); err != nil {
		c.HTML(http.StatusInternalServerError, "login.tmpl", view.Data(c, gin.H{
			"Error": "could not start your session, please try again",
			"Email": creds.Email,
		}))
		return
	}

	next := c.PostForm("next")
	if next == "" || next[0] != '/' {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (h *Handler) ShowRegister(c *gin.Context) {
	if auth.CurrentSession(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "register.tmpl", view.Data(c, nil))
}

func (h *Handler) Register(c *gin.Context) {
	req := auth.RegisterRequest{
		Name:            c.PostForm("name"),
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirm_password"),
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		c.HTML(view.StatusOf(err), "register.tmpl", view.Data(c, gin.H{
			"Error": view.ErrorMessage(err),
			"Name":  req.Name,
			"Email": req.Email,
		}))
		return
	}

	if err := h.resolver.SaveSession(c, result.Token, &result.User); err != nil {
		c.HTML(http.StatusInternalServerError, "register.tmpl", view.Data(c, gin.H{
			"Error": "could not start your session, please try again",
			"Name":  req.Name,
			"Email": req.Email,
		}))
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout clears persisted auth state locally. No backend call is made.
func (h *Handler) Logout(c *gin.Context) {
	h.resolver.ClearSession(c)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) ShowProfile(c *gin.Context) {
	c.HTML(http.StatusOK, "profile.tmpl", view.Data(c, nil))
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	s := auth.CurrentSession(c)

	req := auth.ProfileUpdate{
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), s.Token, req)
	if err != nil {
		if h.redirectOnAuthError(c, err) {
			return
		}
		c.HTML(view.StatusOf(err), "profile.tmpl", view.Data(c, gin.H{
			"Error": view.ErrorMessage(err),
		}))
		return
	}

	// Re-persist the cached user record so the cookie reflects the change.
	if err := h.resolver.SaveSession(c, s.Token, updated); err != nil {
		c.HTML(http.StatusInternalServerError, "profile.tmpl", view.Data(c, gin.H{
			"Error": "profile saved, but your session could not be refreshed",
		}))
		return
	}

	c.HTML(http.StatusOK, "profile.tmpl", view.Data(c, gin.H{
		"Success": "profile updated",
	}))
}

func (h *Handler) ChangePassword(c *gin.Context) {
	s := auth.CurrentSession(c)

	req := auth.PasswordChange{
		Current: c.PostForm("current_password"),
		New:     c.PostForm("new_password"),
		Confirm: c.PostForm("confirm_password"),
	}

	if err := h.service.ChangePassword(c.Request.Context(), s.Token, req); err != nil {
		if h.redirectOnAuthError(c, err) {
			return
		}
		c.HTML(view.StatusOf(err), "profile.tmpl", view.Data(c, gin.H{
			"Error": view.ErrorMessage(err),
		}))
		return
	}

	c.HTML(http.StatusOK, "profile.tmpl", view.Data(c, gin.H{
		"Success": "password changed",
	}))
}

// redirectOnAuthError sends the user back to the login page when the backend
// rejected their token mid-action.
func (h *Handler) redirectOnAuthError(c *gin.Context, err error) bool {
	if !apperror.IsAuth(err) {
		return false
	}
	h.resolver.ClearSession(c)
	c.Redirect(http.StatusFound, "/login")
	return true
}
