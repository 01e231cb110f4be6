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
	"github.com/palmview/hotel-booking-web/internal/pkg/apperror"
	"github.com/palmview/hotel-booking-web/internal/user"
)

const testCookie = "hb_session"

type fakeAuthService struct {
	loginResult *auth.LoginResult
	loginErr    error
	loginCalls  int
	meCalls     int
}

func (f *fakeAuthService) Login(context.Context, auth.Credentials) (*auth.LoginResult, error) {
	f.loginCalls++
	return f.loginResult, f.loginErr
}

func (f *fakeAuthService) Register(context.Context, auth.RegisterRequest) (*auth.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuthService) CurrentUser(context.Context, string) (*user.User, error) {
	f.meCalls++
	if f.loginResult != nil {
		return &f.loginResult.User, nil
	}
	return nil, apperror.New(apperror.KindAuth, http.StatusUnauthorized, "invalid token")
}

func (f *fakeAuthService) UpdateProfile(context.Context, string, auth.ProfileUpdate) (*user.User, error) {
	return nil, apperror.New(apperror.KindServer, http.StatusInternalServerError, "not implemented")
}

func (f *fakeAuthService) ChangePassword(context.Context, string, auth.PasswordChange) error {
	return apperror.New(apperror.KindServer, http.StatusInternalServerError, "not implemented")
}

func newTestRouter(t *testing.T, svc auth.Service) (*gin.Engine, *auth.Resolver) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	codec := auth.NewSessionCodec("test-secret", time.Hour)
	resolver := auth.NewResolver(svc, codec, testCookie, false, zap.NewNop())

	r := gin.New()
	r.LoadHTMLGlob("../../../web/templates/*.tmpl")
	r.Use(resolver.Sessions())
	RegisterRoutes(r, NewHandler(svc, resolver))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "home") })
	return r, resolver
}

func postForm(router *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == testCookie && ck.MaxAge > 0 {
			return ck
		}
	}
	return nil
}

func TestLoginSuccessStartsSession(t *testing.T) {
	svc := &fakeAuthService{
		loginResult: &auth.LoginResult{
			Token: "backend-token",
			User:  user.User{ID: "u-1", Name: "Ada", Role: user.RoleUser},
		},
	}
	router, _ := newTestRouter(t, svc)

	w := postForm(router, "/login", url.Values{
		"email":    {"ada@example.com"},
		"password": {"pw"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	require.NotNil(t, sessionCookie(t, w))
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	svc := &fakeAuthService{
		loginErr: apperror.New(apperror.KindAuth, http.StatusUnauthorized, "invalid email or password"),
	}
	router, _ := newTestRouter(t, svc)

	w := postForm(router, "/login", url.Values{
		"email":    {"ada@example.com"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// The backend message is surfaced verbatim on the re-rendered form.
	assert.Contains(t, w.Body.String(), "invalid email or password")
	assert.Contains(t, w.Body.String(), "ada@example.com")
	assert.Nil(t, sessionCookie(t, w))
}

func TestLoginHonorsSafeNextTarget(t *testing.T) {
	svc := &fakeAuthService{
		loginResult: &auth.LoginResult{Token: "tok", User: user.User{ID: "u-1"}},
	}
	router, _ := newTestRouter(t, svc)

	w := postForm(router, "/login", url.Values{
		"email":    {"ada@example.com"},
		"password": {"pw"},
		"next":     {"/bookings"},
	})
	assert.Equal(t, "/bookings", w.Header().Get("Location"))

	// Absolute URLs are never followed.
	w = postForm(router, "/login", url.Values{
		"email":    {"ada@example.com"},
		"password": {"pw"},
		"next":     {"https://evil.example.com"},
	})
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRegisterMismatchedPasswordsNeverReachBackend(t *testing.T) {
	svc := &fakeAuthService{
		loginErr: auth.ErrPasswordMismatch,
	}
	router, _ := newTestRouter(t, svc)

	w := postForm(router, "/register", url.Values{
		"name":             {"Ada"},
		"email":            {"ada@example.com"},
		"password":         {"pw1"},
		"confirm_password": {"pw2"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "passwords do not match")
	assert.Nil(t, sessionCookie(t, w))
}

func TestLogoutClearsSessionWithoutBackendCall(t *testing.T) {
	svc := &fakeAuthService{
		loginResult: &auth.LoginResult{Token: "tok", User: user.User{ID: "u-1"}},
	}
	router, _ := newTestRouter(t, svc)

	login := postForm(router, "/login", url.Values{
		"email":    {"ada@example.com"},
		"password": {"pw"},
	})
	ck := sessionCookie(t, login)
	require.NotNil(t, ck)

	before := svc.meCalls
	w := postForm(router, "/logout", nil, ck)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
	// Logout itself resolves the session from the cookie but sends nothing
	// beyond that one read.
	assert.LessOrEqual(t, svc.meCalls-before, 1)
}
