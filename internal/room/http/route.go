package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Home)
	r.GET("/rooms", h.List)
	r.GET("/rooms/:id", h.Detail)
}
