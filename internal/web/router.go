package web

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/palmview/hotel-booking-web/internal/admin"
	adminHttp "github.com/palmview/hotel-booking-web/internal/admin/http"
	"github.com/palmview/hotel-booking-web/internal/auth"
	authHttp "github.com/palmview/hotel-booking-web/internal/auth/http"
	"github.com/palmview/hotel-booking-web/internal/booking"
	bookingHttp "github.com/palmview/hotel-booking-web/internal/booking/http"
	"github.com/palmview/hotel-booking-web/internal/category"
	"github.com/palmview/hotel-booking-web/internal/pkg/view"
	"github.com/palmview/hotel-booking-web/internal/room"
	roomHttp "github.com/palmview/hotel-booking-web/internal/room/http"
	"github.com/palmview/hotel-booking-web/internal/user"
)

// Config holds everything the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	TemplateGlob string

	Logger   *zap.Logger
	Resolver *auth.Resolver

	AuthService     auth.Service
	RoomService     room.Service
	BookingService  booking.Service
	CategoryService category.Service
	UserService     user.Service
	AdminService    admin.Service
}

// NewRouter assembles middleware (request id, logging, recovery, CORS,
// session resolution), templates and the route surface for guests and admins.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(RequestID(), RequestLogger(cfg.Logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:8080"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.LoadHTMLGlob(cfg.TemplateGlob)

	// Session resolution runs on every request; route guards rely on it.
	r.Use(cfg.Resolver.Sessions())

	authHandler := authHttp.NewHandler(cfg.AuthService, cfg.Resolver)
	roomHandler := roomHttp.NewHandler(cfg.RoomService, cfg.CategoryService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.RoomService, cfg.Resolver)
	adminHandler := adminHttp.NewHandler(
		cfg.AdminService,
		cfg.RoomService,
		cfg.BookingService,
		cfg.UserService,
		cfg.CategoryService,
	)

	authHttp.RegisterRoutes(r, authHandler)
	roomHttp.RegisterRoutes(r, roomHandler)
	bookingHttp.RegisterRoutes(r, bookingHandler)
	adminHttp.RegisterRoutes(r, adminHandler)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.tmpl", view.Data(c, nil))
	})

	return r
}
