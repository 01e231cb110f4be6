package user

import (
	"context"

	"github.com/palmview/hotel-booking-web/internal/backend"
)

// Service exposes the admin-only user directory.
type Service interface {
	List(ctx context.Context, token string) ([]User, error)
}

type service struct {
	api *backend.Client
}

// NewService creates a new user Service.
func NewService(api *backend.Client) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context, token string) ([]User, error) {
	var users []User
	if err := s.api.Get(ctx, token, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
