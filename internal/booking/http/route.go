package http

import (
	"github.com/gin-gonic/gin"

	"github.com/palmview/hotel-booking-web/internal/auth"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	authed := r.Group("/", auth.RequireUser())
	{
		authed.GET("/rooms/:id/book", h.ShowForm)
		authed.POST("/rooms/:id/book", h.Submit)
		authed.GET("/bookings", h.ListMine)
		authed.GET("/bookings/:id", h.Detail)
		authed.POST("/bookings/:id/cancel", h.Cancel)
	}
}
