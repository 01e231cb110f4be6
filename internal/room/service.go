package room

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/palmview/hotel-booking-web/internal/backend"
	"github.com/palmview/hotel-booking-web/internal/pkg/cache"
)

const listCacheKey = "rooms:list"

// SearchParams filters rooms by stay dates and guest count. Dates use the
// 2006-01-02 wire format.
type SearchParams struct {
	CheckIn  string
	CheckOut string
	Guests   int
}

// Input carries the admin create/update form fields.
type Input struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	IsAvailable bool     `json:"isAvailable"`
	CategoryID  string   `json:"category,omitempty"`
}

// Service exposes room reads for guests and room management for admins.
// All data is owned by the backend; the service only shapes and caches it.
type Service interface {
	List(ctx context.Context) ([]Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	ListByCategory(ctx context.Context, categoryID string) ([]Room, error)
	Available(ctx context.Context) ([]Room, error)
	Search(ctx context.Context, params SearchParams) ([]Room, error)

	AdminList(ctx context.Context, token string) ([]Room, []RecordIssue, error)
	Create(ctx context.Context, token string, input Input) (*Room, error)
	Update(ctx context.Context, token, id string, input Input) (*Room, error)
	Delete(ctx context.Context, token, id string) error
	UpdateStatus(ctx context.Context, token, id, status string) (*Room, error)
}

type service struct {
	api      *backend.Client
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService creates a new room Service. The cache holds the public room
// listing only; admin mutations invalidate it.
func NewService(api *backend.Client, c cache.Cache, cacheTTL time.Duration, logger *zap.Logger) Service {
	return &service{
		api:      api,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *service) List(ctx context.Context) ([]Room, error) {
	var cached []Room
	found, err := s.cache.Get(ctx, listCacheKey, &cached)
	if err != nil {
		// Cache trouble is never fatal for a read path.
		s.logger.Warn("room list cache read failed", zap.Error(err))
	}
	if found {
		return cached, nil
	}

	var raw roomList
	if err := s.api.Get(ctx, "", "/rooms", nil, &raw); err != nil {
		return nil, err
	}

	rooms, issues := Shape(raw)
	if len(issues) > 0 {
		s.logger.Warn("dropped malformed room records from listing",
			zap.Int("count", len(issues)),
		)
	}

	if err := s.cache.Set(ctx, listCacheKey, rooms, s.cacheTTL); err != nil {
		s.logger.Warn("room list cache write failed", zap.Error(err))
	}

	return rooms, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	var r Room
	if err := s.api.Get(ctx, "", "/rooms/"+id, nil, &r); err != nil {
		return nil, err
	}

	if reason := shapeOne(&r); reason != "" {
		s.logger.Warn("room record failed shaping",
			zap.String("room_id", id),
			zap.String("reason", reason),
		)
		return nil, ErrInvalid
	}
	return &r, nil
}

func (s *service) ListByCategory(ctx context.Context, categoryID string) ([]Room, error) {
	if categoryID == "" {
		return nil, ErrMissingID
	}

	var raw roomList
	if err := s.api.Get(ctx, "", "/rooms/category/"+categoryID, nil, &raw); err != nil {
		return nil, err
	}

	rooms, _ := Shape(raw)
	return rooms, nil
}

func (s *service) Available(ctx context.Context) ([]Room, error) {
	var raw roomList
	if err := s.api.Get(ctx, "", "/rooms/available", nil, &raw); err != nil {
		return nil, err
	}

	rooms, _ := Shape(raw)
	return rooms, nil
}

func (s *service) Search(ctx context.Context, params SearchParams) ([]Room, error) {
	query := url.Values{}
	if params.CheckIn != "" {
		query.Set("checkIn", params.CheckIn)
	}
	if params.CheckOut != "" {
		query.Set("checkOut", params.CheckOut)
	}
	if params.Guests > 0 {
		query.Set("guests", strconv.Itoa(params.Guests))
	}

	var raw roomList
	if err := s.api.Get(ctx, "", "/rooms/search", query, &raw); err != nil {
		return nil, err
	}

	rooms, _ := Shape(raw)
	return rooms, nil
}

func (s *service) AdminList(ctx context.Context, token string) ([]Room, []RecordIssue, error) {
	var raw roomList
	if err := s.api.Get(ctx, token, "/admin/rooms", nil, &raw); err != nil {
		return nil, nil, err
	}

	rooms, issues := Shape(raw)
	return rooms, issues, nil
}

func (s *service) Create(ctx context.Context, token string, input Input) (*Room, error) {
	var r Room
	if err := s.api.Post(ctx, token, "/admin/rooms", input, &r); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return &r, nil
}

func (s *service) Update(ctx context.Context, token, id string, input Input) (*Room, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	var r Room
	if err := s.api.Put(ctx, token, "/admin/rooms/"+id, input, &r); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return &r, nil
}

func (s *service) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return ErrMissingID
	}

	if err := s.api.Delete(ctx, token, "/admin/rooms/"+id, nil); err != nil {
		return err
	}

	s.invalidateList(ctx)
	return nil
}

func (s *service) UpdateStatus(ctx context.Context, token, id, status string) (*Room, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	body := map[string]string{"status": status}
	var r Room
	if err := s.api.Patch(ctx, token, "/admin/rooms/"+id+"/status", body, &r); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return &r, nil
}

func (s *service) invalidateList(ctx context.Context) {
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		s.logger.Warn("room list cache invalidation failed", zap.Error(err))
	}
}
