package auth

import (
	"context"

	"github.com/palmview/hotel-booking-web/internal/user"
)

// UserResolver resolves a bearer token to a user record. Satisfied by Service.
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (*user.User, error)
}

// BootstrapResult is the outcome of one bootstrap run.
type BootstrapResult struct {
	// Session is nil for anonymous visitors.
	Session *Session
	// ClearPersisted is set when the stored auth state turned out to be
	// unusable and must be dropped by the caller.
	ClearPersisted bool
}

// Bootstrap turns persisted auth state into a usable session. It is a single
// bounded sequence with no retries:
//
//   - no token: anonymous, zero network calls
//   - token resolves against the backend: verified session
//   - resolution fails but a cached user record exists: degraded session,
//     trusted without re-validation and marked Verified=false
//   - resolution fails and no usable cache: clear everything, anonymous
func Bootstrap(ctx context.Context, resolver UserResolver, token string, cached *user.User) BootstrapResult {
	if token == "" {
		return BootstrapResult{}
	}

	resolved, err := resolver.CurrentUser(ctx, token)
	if err == nil && resolved != nil {
		return BootstrapResult{
			Session: &Session{User: resolved, Token: token, Verified: true},
		}
	}

	if cached != nil && cached.ID != "" {
		return BootstrapResult{
			Session: &Session{User: cached, Token: token, Verified: false},
		}
	}

	return BootstrapResult{ClearPersisted: true}
}
