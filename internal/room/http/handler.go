package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/palmview/hotel-booking-web/internal/category"
	"github.com/palmview/hotel-booking-web/internal/pkg/view"
	"github.com/palmview/hotel-booking-web/internal/room"
)

type Handler struct {
	service    room.Service
	catService category.Service
}

func NewHandler(service room.Service, catService category.Service) *Handler {
	return &Handler{
		service:    service,
		catService: catService,
	}
}

// Home renders the landing page with a handful of featured rooms.
func (h *Handler) Home(c *gin.Context) {
	rooms, err := h.service.List(c.Request.Context())
	if err != nil {
		c.HTML(view.StatusOf(err), "home.tmpl", view.Data(c, gin.H{
			"Error": view.ErrorMessage(err),
		}))
		return
	}

	if len(rooms) > 3 {
		rooms = rooms[:3]
	}
	c.HTML(http.StatusOK, "home.tmpl", view.Data(c, gin.H{
		"Rooms": rooms,
	}))
}

// List renders the public rooms page. A category filter and a date/guests
// search are both supported; search wins when both are present.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	categoryID := c.Query("category")
	params := room.SearchParams{
		CheckIn:  c.Query("check_in"),
		CheckOut: c.Query("check_out"),
	}
	if g, err := strconv.Atoi(c.Query("guests")); err == nil {
		params.Guests = g
	}

	var rooms []room.Room
	var err error
	switch {
	case params.CheckIn != "" && params.CheckOut != "":
		rooms, err = h.service.Search(ctx, params)
	case categoryID != "":
		rooms, err = h.service.ListByCategory(ctx, categoryID)
	case c.Query("available") == "1":
		rooms, err = h.service.Available(ctx)
	default:
		rooms, err = h.service.List(ctx)
	}
	if err != nil {
		c.HTML(view.StatusOf(err), "rooms.tmpl", view.Data(c, gin.H{
			"Error":  view.ErrorMessage(err),
			"Search": params,
		}))
		return
	}

	// The category filter bar is decorative when the lookup fails.
	categories, catErr := h.catService.List(ctx)
	if catErr != nil {
		categories = nil
	}

	c.HTML(http.StatusOK, "rooms.tmpl", view.Data(c, gin.H{
		"Rooms":      rooms,
		"Categories": categories,
		"Selected":   categoryID,
		"Search":     params,
	}))
}

func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	rm, err := h.service.GetByID(ctx, c.Param("id"))
	if err != nil {
		c.HTML(view.StatusOf(err), "error.tmpl", view.Data(c, gin.H{
			"Error": view.ErrorMessage(err),
		}))
		return
	}

	// The category name is decorative; the page renders without it.
	var categoryName string
	if rm.CategoryID != "" {
		if cat, err := h.catService.GetByID(ctx, rm.CategoryID); err == nil {
			categoryName = cat.Name
		}
	}

	c.HTML(http.StatusOK, "room_detail.tmpl", view.Data(c, gin.H{
		"Room":     rm,
		"Category": categoryName,
	}))
}
