package booking

import (
	"context"
	"time"

	"github.com/palmview/hotel-booking-web/internal/backend"
	"github.com/palmview/hotel-booking-web/internal/room"
)

// CreateRequest is the submission payload. The client-computed total is
// deliberately absent: the backend is the sole source of truth for pricing
// and availability.
type CreateRequest struct {
	RoomID   string `json:"roomId"`
	CheckIn  Date   `json:"checkIn"`
	CheckOut Date   `json:"checkOut"`
	Guests   Guests `json:"guests"`
}

// Service submits and reads bookings on behalf of the current session.
type Service interface {
	// Create validates the stay locally and submits it. Validation failures
	// return before any network call is made.
	Create(ctx context.Context, token string, rm *room.Room, stay Stay) (*Booking, error)
	ListMine(ctx context.Context, token string) ([]Booking, error)
	GetByID(ctx context.Context, token, id string) (*Booking, error)
	Cancel(ctx context.Context, token, id string) (*Booking, error)

	AdminList(ctx context.Context, token string) ([]Booking, error)
	UpdateStatus(ctx context.Context, token, id string, status Status) (*Booking, error)
}

type service struct {
	api *backend.Client
	now func() time.Time
}

// NewService creates a new booking Service.
func NewService(api *backend.Client) Service {
	return &service{
		api: api,
		now: time.Now,
	}
}

func (s *service) Create(ctx context.Context, token string, rm *room.Room, stay Stay) (*Booking, error) {
	if err := stay.Validate(rm.Capacity, s.now()); err != nil {
		return nil, err
	}

	req := CreateRequest{
		RoomID:   rm.ID,
		CheckIn:  Date{DateOnly(stay.CheckIn)},
		CheckOut: Date{DateOnly(stay.CheckOut)},
		Guests:   stay.Guests,
	}

	var b Booking
	if err := s.api.Post(ctx, token, "/bookings", req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *service) ListMine(ctx context.Context, token string) ([]Booking, error) {
	var bookings []Booking
	if err := s.api.Get(ctx, token, "/bookings/my-bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *service) GetByID(ctx context.Context, token, id string) (*Booking, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	var b Booking
	if err := s.api.Get(ctx, token, "/bookings/"+id, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *service) Cancel(ctx context.Context, token, id string) (*Booking, error) {
	if id == "" {
		return nil, ErrMissingID
	}

	var b Booking
	if err := s.api.Put(ctx, token, "/bookings/"+id+"/cancel", nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *service) AdminList(ctx context.Context, token string) ([]Booking, error) {
	var bookings []Booking
	if err := s.api.Get(ctx, token, "/admin/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *service) UpdateStatus(ctx context.Context, token, id string, status Status) (*Booking, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	body := map[string]string{"status": string(status)}
	var b Booking
	if err := s.api.Put(ctx, token, "/admin/bookings/"+id+"/status", body, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
