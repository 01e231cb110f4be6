package http

import (
	"github.com/gin-gonic/gin"

	"github.com/palmview/hotel-booking-web/internal/auth"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.POST("/logout", h.Logout)

	profile := r.Group("/profile", auth.RequireUser())
	{
		profile.GET("", h.ShowProfile)
		profile.POST("", h.UpdateProfile)
		profile.POST("/password", h.ChangePassword)
	}
}
