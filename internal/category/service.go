package category

import (
	"context"

	"github.com/palmview/hotel-booking-web/internal/backend"
)

// Input carries the admin create/update fields.
type Input struct {
	Name string `json:"name"`
}

// Service reads categories for everyone and manages them for admins.
type Service interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)

	Create(ctx context.Context, token string, input Input) (*Category, error)
	Update(ctx context.Context, token, id string, input Input) (*Category, error)
	Delete(ctx context.Context, token, id string) error
}

type service struct {
	api *backend.Client
}

// NewService creates a new category Service.
func NewService(api *backend.Client) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := s.api.Get(ctx, "", "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Category, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	var c Category
	if err := s.api.Get(ctx, "", "/categories/"+id, nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *service) Create(ctx context.Context, token string, input Input) (*Category, error) {
	var c Category
	if err := s.api.Post(ctx, token, "/categories", input, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *service) Update(ctx context.Context, token, id string, input Input) (*Category, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	var c Category
	if err := s.api.Put(ctx, token, "/categories/"+id, input, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *service) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return ErrMissingID
	}
	return s.api.Delete(ctx, token, "/categories/"+id, nil)
}
