package auth

import (
	"context"
	"strings"

	"github.com/palmview/hotel-booking-web/internal/backend"
	"github.com/palmview/hotel-booking-web/internal/pkg/apperror"
	"github.com/palmview/hotel-booking-web/internal/user"
)

// Local pre-submission failures. These never reach the network.
var (
	ErrPasswordMismatch = apperror.Validation("passwords do not match")
	ErrMissingFields    = apperror.Validation("all fields are required")
)

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the registration form payload. ConfirmPassword is
// checked locally and never sent to the backend.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

// LoginResult is the backend response to a successful login or registration.
type LoginResult struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

// Service performs authentication calls against the backend. Persisting the
// resulting session is the Resolver's job, not the Service's.
type Service interface {
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) (*LoginResult, error)
	CurrentUser(ctx context.Context, token string) (*user.User, error)
	UpdateProfile(ctx context.Context, token string, req ProfileUpdate) (*user.User, error)
	ChangePassword(ctx context.Context, token string, req PasswordChange) error
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PasswordChange carries a password-change request. Confirm is checked
// locally before submission.
type PasswordChange struct {
	Current string `json:"currentPassword"`
	New     string `json:"newPassword"`
	Confirm string `json:"-"`
}

type service struct {
	api *backend.Client
}

// NewService creates a new auth Service.
func NewService(api *backend.Client) Service {
	return &service{api: api}
}

func (s *service) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return nil, ErrMissingFields
	}

	var result LoginResult
	if err := s.api.Post(ctx, "", "/auth/login", creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	var result LoginResult
	if err := s.api.Post(ctx, "", "/auth/register", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) CurrentUser(ctx context.Context, token string) (*user.User, error) {
	var u user.User
	if err := s.api.Get(ctx, token, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) UpdateProfile(ctx context.Context, token string, req ProfileUpdate) (*user.User, error) {
	var u user.User
	if err := s.api.Put(ctx, token, "/auth/profile", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *service) ChangePassword(ctx context.Context, token string, req PasswordChange) error {
	if req.New != req.Confirm {
		return ErrPasswordMismatch
	}
	return s.api.Put(ctx, token, "/auth/password", req, nil)
}
