package http

import (
	"github.com/gin-gonic/gin"

	"github.com/palmview/hotel-booking-web/internal/auth"
)

// Param routes sit under their own static prefixes (edit/update/...) so they
// never share a segment with a static sibling, which the router rejects.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	group := r.Group("/admin", auth.RequireAdmin())
	{
		group.GET("", h.Dashboard)

		group.GET("/rooms", h.Rooms)
		group.GET("/rooms/new", h.ShowNewRoom)
		group.POST("/rooms", h.CreateRoom)
		group.GET("/rooms/edit/:id", h.ShowEditRoom)
		group.POST("/rooms/update/:id", h.UpdateRoom)
		group.POST("/rooms/delete/:id", h.DeleteRoom)
		group.POST("/rooms/status/:id", h.UpdateRoomStatus)

		group.GET("/bookings", h.Bookings)
		group.POST("/bookings/status/:id", h.UpdateBookingStatus)

		group.GET("/users", h.Users)

		group.GET("/categories", h.Categories)
		group.POST("/categories", h.CreateCategory)
		group.POST("/categories/update/:id", h.UpdateCategory)
		group.POST("/categories/delete/:id", h.DeleteCategory)
	}
}
