package admin

import (
	"context"

	"github.com/palmview/hotel-booking-web/internal/backend"
)

// Stats is the dashboard summary the backend computes.
type Stats struct {
	TotalRooms      int     `json:"totalRooms"`
	AvailableRooms  int     `json:"availableRooms"`
	TotalBookings   int     `json:"totalBookings"`
	PendingBookings int     `json:"pendingBookings"`
	TotalUsers      int     `json:"totalUsers"`
	Revenue         float64 `json:"revenue"`
}

// Service exposes the admin dashboard data.
type Service interface {
	Dashboard(ctx context.Context, token string) (*Stats, error)
}

type service struct {
	api *backend.Client
}

// NewService creates a new admin Service.
func NewService(api *backend.Client) Service {
	return &service{api: api}
}

func (s *service) Dashboard(ctx context.Context, token string) (*Stats, error) {
	var stats Stats
	if err := s.api.Get(ctx, token, "/admin/dashboard", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
