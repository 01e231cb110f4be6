package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/palmview/hotel-booking-web/internal/admin"
	"github.com/palmview/hotel-booking-web/internal/auth"
	"github.com/palmview/hotel-booking-web/internal/backend"
	"github.com/palmview/hotel-booking-web/internal/booking"
	"github.com/palmview/hotel-booking-web/internal/category"
	"github.com/palmview/hotel-booking-web/internal/config"
	"github.com/palmview/hotel-booking-web/internal/pkg/cache"
	"github.com/palmview/hotel-booking-web/internal/room"
	"github.com/palmview/hotel-booking-web/internal/user"
	"github.com/palmview/hotel-booking-web/internal/web"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router   *gin.Engine
	Resolver *auth.Resolver

	redisCache *cache.RedisCache
}

// NewContainer initializes all modules and returns the container.
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	// Backend API client, the single HTTP access point
	apiClient := backend.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger)

	// Result cache: Redis when configured, in-process otherwise
	container := &Container{}
	var resultCache cache.Cache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		container.redisCache = redisCache
		resultCache = redisCache
		logger.Info("using redis result cache", zap.String("addr", cfg.RedisAddr))
	} else {
		resultCache = cache.NewMemoryCache()
	}

	// Session handling
	codec := auth.NewSessionCodec(cfg.SessionSecret, cfg.SessionTTL)
	authService := auth.NewService(apiClient)
	resolver := auth.NewResolver(authService, codec, cfg.SessionCookie, cfg.IsProduction, logger)
	container.Resolver = resolver

	// Domain services
	roomService := room.NewService(apiClient, resultCache, cfg.CacheTTL, logger)
	bookingService := booking.NewService(apiClient)
	categoryService := category.NewService(apiClient)
	userService := user.NewService(apiClient)
	adminService := admin.NewService(apiClient)

	// Router
	container.Router = web.NewRouter(web.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		TemplateGlob:    cfg.TemplateGlob,
		Logger:          logger,
		Resolver:        resolver,
		AuthService:     authService,
		RoomService:     roomService,
		BookingService:  bookingService,
		CategoryService: categoryService,
		UserService:     userService,
		AdminService:    adminService,
	})

	return container, nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.redisCache != nil {
		return c.redisCache.Close()
	}
	return nil
}
