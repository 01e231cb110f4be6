package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/palmview/hotel-booking-web/internal/admin"
	"github.com/palmview/hotel-booking-web/internal/auth"
	"github.com/palmview/hotel-booking-web/internal/booking"
	"github.com/palmview/hotel-booking-web/internal/category"
	"github.com/palmview/hotel-booking-web/internal/pkg/view"
	"github.com/palmview/hotel-booking-web/internal/room"
	"github.com/palmview/hotel-booking-web/internal/user"
)

// Handler serves the admin console. Every route is behind RequireAdmin, so
// handlers can assume an admin session.
type Handler struct {
	service        admin.Service
	roomService    room.Service
	bookingService booking.Service
	userService    user.Service
	catService     category.Service
}

func NewHandler(
	service admin.Service,
	roomService room.Service,
	bookingService booking.Service,
	userService user.Service,
	catService category.Service,
) *Handler {
	return &Handler{
		service:        service,
		roomService:    roomService,
		bookingService: bookingService,
		userService:    userService,
		catService:     catService,
	}
}

func (h *Handler) renderError(c *gin.Context, err error) {
	c.HTML(view.StatusOf(err), "error.tmpl", view.Data(c, gin.H{
		"Error": view.ErrorMessage(err),
	}))
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context(), auth.Token(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.tmpl", view.Data(c, gin.H{
		"Stats": stats,
	}))
}

// Rooms lists every room, including the records that failed shaping so data
// problems are visible instead of silently hidden.
func (h *Handler) Rooms(c *gin.Context) {
	rooms, issues, err := h.roomService.AdminList(c.Request.Context(), auth.Token(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_rooms.tmpl", view.Data(c, gin.H{
		"Rooms":  rooms,
		"Issues": issues,
	}))
}

func (h *Handler) ShowNewRoom(c *gin.Context) {
	categories, _ := h.catService.List(c.Request.Context())
	c.HTML(http.StatusOK, "admin_room_form.tmpl", view.Data(c, gin.H{
		"Categories": categories,
	}))
}

func (h *Handler) ShowEditRoom(c *gin.Context) {
	ctx := c.Request.Context()
	rm, err := h.roomService.GetByID(ctx, c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	categories, _ := h.catService.List(ctx)
	c.HTML(http.StatusOK, "admin_room_form.tmpl", view.Data(c, gin.H{
		"Room":       rm,
		"Categories": categories,
	}))
}

func roomInputFromForm(c *gin.Context) room.Input {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	capacity, _ := strconv.Atoi(c.PostForm("capacity"))

	input := room.Input{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Capacity:    capacity,
		IsAvailable: c.PostForm("is_available") == "on",
		CategoryID:  c.PostForm("category"),
	}

	input.Amenities = splitLines(c.PostForm("amenities"))
	input.Images = splitLines(c.PostForm("images"))
	return input
}

// splitLines turns a textarea into a list, one entry per line.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (h *Handler) CreateRoom(c *gin.Context) {
	input := roomInputFromForm(c)
	if _, err := h.roomService.Create(c.Request.Context(), auth.Token(c), input); err != nil {
		categories, _ := h.catService.List(c.Request.Context())
		c.HTML(view.StatusOf(err), "admin_room_form.tmpl", view.Data(c, gin.H{
			"Error":      view.ErrorMessage(err),
			"Categories": categories,
		}))
		return
	}
	c.Redirect(http.StatusFound, "/admin/rooms")
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	input := roomInputFromForm(c)
	if _, err := h.roomService.Update(c.Request.Context(), auth.Token(c), c.Param("id"), input); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/rooms")
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	if err := h.roomService.Delete(c.Request.Context(), auth.Token(c), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/rooms")
}

func (h *Handler) UpdateRoomStatus(c *gin.Context) {
	status := c.PostForm("status")
	if _, err := h.roomService.UpdateStatus(c.Request.Context(), auth.Token(c), c.Param("id"), status); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/rooms")
}

func (h *Handler) Bookings(c *gin.Context) {
	bookings, err := h.bookingService.AdminList(c.Request.Context(), auth.Token(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_bookings.tmpl", view.Data(c, gin.H{
		"Bookings": bookings,
		"Statuses": []booking.Status{
			booking.StatusPending,
			booking.StatusConfirmed,
			booking.StatusCancelled,
			booking.StatusCompleted,
		},
	}))
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	status := booking.Status(c.PostForm("status"))
	if _, err := h.bookingService.UpdateStatus(c.Request.Context(), auth.Token(c), c.Param("id"), status); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/bookings")
}

func (h *Handler) Users(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context(), auth.Token(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_users.tmpl", view.Data(c, gin.H{
		"Users": users,
	}))
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.catService.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_categories.tmpl", view.Data(c, gin.H{
		"Categories": categories,
	}))
}

func (h *Handler) CreateCategory(c *gin.Context) {
	input := category.Input{Name: c.PostForm("name")}
	if _, err := h.catService.Create(c.Request.Context(), auth.Token(c), input); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/categories")
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	input := category.Input{Name: c.PostForm("name")}
	if _, err := h.catService.Update(c.Request.Context(), auth.Token(c), c.Param("id"), input); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/categories")
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.catService.Delete(c.Request.Context(), auth.Token(c), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/categories")
}
