package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/palmview/hotel-booking-web/internal/auth"
	"github.com/palmview/hotel-booking-web/internal/booking"
	"github.com/palmview/hotel-booking-web/internal/pkg/apperror"
	"github.com/palmview/hotel-booking-web/internal/pkg/view"
	"github.com/palmview/hotel-booking-web/internal/room"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service     booking.Service
	roomService room.Service
	resolver    *auth.Resolver
}

func NewHandler(service booking.Service, roomService room.Service, resolver *auth.Resolver) *Handler {
	return &Handler{
		service:     service,
		roomService: roomService,
		resolver:    resolver,
	}
}

// ShowForm renders the booking form for a room.
func (h *Handler) ShowForm(c *gin.Context) {
	rm, err := h.roomService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.HTML(view.StatusOf(err), "error.tmpl", view.Data(c, gin.H{
			"Error": view.ErrorMessage(err),
		}))
		return
	}

	c.HTML(http.StatusOK, "booking_form.tmpl", view.Data(c, gin.H{
		"Room":  rm,
		"Today": time.Now().Format(dateLayout),
		"Form":  formValues{Adults: 1},
	}))
}

// formValues echoes the submitted fields back into the form on error.
type formValues struct {
	CheckIn  string
	CheckOut string
	Adults   int
	Children int
}

// Submit validates the stay and submits the reservation. The client-computed
// total is shown as a preview only; the backend assigns the booking id and
// the authoritative price.
func (h *Handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	rm, err := h.roomService.GetByID(ctx, c.Param("id"))
	if err != nil {
		c.HTML(view.StatusOf(err), "error.tmpl", view.Data(c, gin.H{
			"Error": view.ErrorMessage(err),
		}))
		return
	}

	form := formValues{
		CheckIn:  c.PostForm("check_in"),
		CheckOut: c.PostForm("check_out"),
	}
	form.Adults, _ = strconv.Atoi(c.DefaultPostForm("adults", "1"))
	form.Children, _ = strconv.Atoi(c.DefaultPostForm("children", "0"))

	stay, err := parseStay(form)
	if err == nil {
		var b *booking.Booking
		b, err = h.service.Create(ctx, auth.Token(c), rm, stay)
		if err == nil {
			c.Redirect(http.StatusFound, "/bookings/"+b.ID)
			return
		}
	}

	// The backend rejected the token mid-action: back to login.
	if apperror.IsAuth(err) {
		h.resolver.ClearSession(c)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(view.StatusOf(err), "booking_form.tmpl", view.Data(c, gin.H{
		"Room":    rm,
		"Today":   time.Now().Format(dateLayout),
		"Form":    form,
		"Error":   view.ErrorMessage(err),
		"Nights":  stay.Nights(),
		"Preview": stay.Total(rm.Price),
	}))
}

func parseStay(form formValues) (booking.Stay, error) {
	checkIn, err := time.Parse(dateLayout, form.CheckIn)
	if err != nil {
		return booking.Stay{}, apperror.Validation("please provide a valid check-in date")
	}
	checkOut, err := time.Parse(dateLayout, form.CheckOut)
	if err != nil {
		return booking.Stay{}, apperror.Validation("please provide a valid check-out date")
	}

	return booking.Stay{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   booking.Guests{Adults: form.Adults, Children: form.Children},
	}, nil
}

// ListMine renders the current user's bookings.
func (h *Handler) ListMine(c *gin.Context) {
	bookings, err := h.service.ListMine(c.Request.Context(), auth.Token(c))
	if err != nil {
		if apperror.IsAuth(err) {
			h.resolver.ClearSession(c)
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.HTML(view.StatusOf(err), "bookings.tmpl", view.Data(c, gin.H{
			"Error": view.ErrorMessage(err),
		}))
		return
	}

	c.HTML(http.StatusOK, "bookings.tmpl", view.Data(c, gin.H{
		"Bookings": bookings,
	}))
}

func (h *Handler) Detail(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), auth.Token(c), c.Param("id"))
	if err != nil {
		if apperror.IsAuth(err) {
			h.resolver.ClearSession(c)
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.HTML(view.StatusOf(err), "error.tmpl", view.Data(c, gin.H{
			"Error": view.ErrorMessage(err),
		}))
		return
	}

	c.HTML(http.StatusOK, "booking_detail.tmpl", view.Data(c, gin.H{
		"Booking": b,
	}))
}

func (h *Handler) Cancel(c *gin.Context) {
	_, err := h.service.Cancel(c.Request.Context(), auth.Token(c), c.Param("id"))
	if err != nil {
		if apperror.IsAuth(err) {
			h.resolver.ClearSession(c)
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.HTML(view.StatusOf(err), "error.tmpl", view.Data(c, gin.H{
			"Error": view.ErrorMessage(err),
		}))
		return
	}

	c.Redirect(http.StatusFound, "/bookings")
}
