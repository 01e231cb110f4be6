package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/palmview/hotel-booking-web/internal/auth"
	"github.com/palmview/hotel-booking-web/internal/backend"
	"github.com/palmview/hotel-booking-web/internal/booking"
	"github.com/palmview/hotel-booking-web/internal/pkg/apperror"
	"github.com/palmview/hotel-booking-web/internal/pkg/cache"
	"github.com/palmview/hotel-booking-web/internal/room"
	"github.com/palmview/hotel-booking-web/internal/user"
)

const testCookie = "hb_session"

type stubAuthService struct{}

func (stubAuthService) Login(context.Context, auth.Credentials) (*auth.LoginResult, error) {
	return nil, apperror.New(apperror.KindServer, http.StatusInternalServerError, "not implemented")
}

func (stubAuthService) Register(context.Context, auth.RegisterRequest) (*auth.LoginResult, error) {
	return nil, apperror.New(apperror.KindServer, http.StatusInternalServerError, "not implemented")
}

func (stubAuthService) CurrentUser(context.Context, string) (*user.User, error) {
	return &user.User{ID: "u-1", Name: "Ada", Role: user.RoleUser}, nil
}

func (stubAuthService) UpdateProfile(context.Context, string, auth.ProfileUpdate) (*user.User, error) {
	return nil, apperror.New(apperror.KindServer, http.StatusInternalServerError, "not implemented")
}

func (stubAuthService) ChangePassword(context.Context, string, auth.PasswordChange) error {
	return apperror.New(apperror.KindServer, http.StatusInternalServerError, "not implemented")
}

type bookingFixture struct {
	router       *gin.Engine
	resolver     *auth.Resolver
	bookingPosts *int
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	posts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/rooms/r-1":
			w.Write([]byte(`{"_id":"r-1","name":"Deluxe","price":75000,"capacity":4}`))
		case r.Method == http.MethodPost && r.URL.Path == "/bookings":
			posts++
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"_id":"bk-1","room":"r-1","checkIn":"2030-06-10","checkOut":"2030-06-15","guests":{"adults":2},"totalPrice":375000,"status":"pending"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"not found"}`))
		}
	}))
	t.Cleanup(srv.Close)

	api := backend.NewClient(srv.URL, 5*time.Second, zap.NewNop())
	roomSvc := room.NewService(api, cache.NewMemoryCache(), time.Minute, zap.NewNop())
	bookingSvc := booking.NewService(api)

	codec := auth.NewSessionCodec("test-secret", time.Hour)
	resolver := auth.NewResolver(stubAuthService{}, codec, testCookie, false, zap.NewNop())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../../web/templates/*.tmpl")
	r.Use(resolver.Sessions())
	RegisterRoutes(r, NewHandler(bookingSvc, roomSvc, resolver))

	return &bookingFixture{router: r, resolver: resolver, bookingPosts: &posts}
}

func (f *bookingFixture) loggedInCookie(t *testing.T) *http.Cookie {
	t.Helper()
	value, err := auth.NewSessionCodec("test-secret", time.Hour).
		Encode("tok", &user.User{ID: "u-1", Name: "Ada", Role: user.RoleUser})
	require.NoError(t, err)
	return &http.Cookie{Name: testCookie, Value: value}
}

func (f *bookingFixture) submit(t *testing.T, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/rooms/r-1/book", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestSubmitRequiresLogin(t *testing.T) {
	f := newBookingFixture(t)

	w := f.submit(t, url.Values{})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Frooms%2Fr-1%2Fbook", w.Header().Get("Location"))
	assert.Equal(t, 0, *f.bookingPosts)
}

func TestSubmitInvalidStayRerendersFormWithoutSubmission(t *testing.T) {
	f := newBookingFixture(t)

	w := f.submit(t, url.Values{
		"check_in":  {"2020-01-01"},
		"check_out": {"2020-01-05"},
		"adults":    {"2"},
	}, f.loggedInCookie(t))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "check-in date cannot be in the past")
	// The submitted values are echoed back into the form.
	assert.Contains(t, w.Body.String(), "2020-01-01")
	assert.Equal(t, 0, *f.bookingPosts)
}

func TestSubmitOverCapacityStayIsRejectedLocally(t *testing.T) {
	f := newBookingFixture(t)

	w := f.submit(t, url.Values{
		"check_in":  {"2030-06-10"},
		"check_out": {"2030-06-15"},
		"adults":    {"4"},
		"children":  {"2"},
	}, f.loggedInCookie(t))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "guest count exceeds the room capacity")
	assert.Equal(t, 0, *f.bookingPosts)
}

func TestSubmitValidStayRedirectsToBooking(t *testing.T) {
	f := newBookingFixture(t)

	w := f.submit(t, url.Values{
		"check_in":  {"2030-06-10"},
		"check_out": {"2030-06-15"},
		"adults":    {"2"},
	}, f.loggedInCookie(t))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/bookings/bk-1", w.Header().Get("Location"))
	assert.Equal(t, 1, *f.bookingPosts)
}

func TestShowFormRendersPriceDetails(t *testing.T) {
	f := newBookingFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/rooms/r-1/book", nil)
	req.AddCookie(f.loggedInCookie(t))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Deluxe")
	assert.Contains(t, w.Body.String(), "75000")
}
