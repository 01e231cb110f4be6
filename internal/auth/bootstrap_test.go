package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmview/hotel-booking-web/internal/user"
)

type stubResolver struct {
	user  *user.User
	err   error
	calls int
}

func (s *stubResolver) CurrentUser(_ context.Context, _ string) (*user.User, error) {
	s.calls++
	return s.user, s.err
}

func TestBootstrapAnonymousMakesNoNetworkCall(t *testing.T) {
	resolver := &stubResolver{}

	result := Bootstrap(context.Background(), resolver, "", &user.User{ID: "u-1"})

	assert.Nil(t, result.Session)
	assert.False(t, result.ClearPersisted)
	assert.Equal(t, 0, resolver.calls)
}

func TestBootstrapVerifiedSession(t *testing.T) {
	fresh := &user.User{ID: "u-1", Name: "Ada", Email: "ada@example.com", Role: user.RoleUser}
	resolver := &stubResolver{user: fresh}

	result := Bootstrap(context.Background(), resolver, "tok", nil)

	require.NotNil(t, result.Session)
	assert.True(t, result.Session.Verified)
	assert.Equal(t, "tok", result.Session.Token)
	assert.Equal(t, fresh, result.Session.User)
	assert.False(t, result.ClearPersisted)
	assert.Equal(t, 1, resolver.calls)
}

func TestBootstrapFallsBackToCachedUser(t *testing.T) {
	cached := &user.User{ID: "u-1", Name: "Ada", Role: user.RoleAdmin}
	resolver := &stubResolver{err: errors.New("connection refused")}

	result := Bootstrap(context.Background(), resolver, "tok", cached)

	require.NotNil(t, result.Session)
	assert.False(t, result.Session.Verified)
	assert.Equal(t, cached, result.Session.User)
	assert.Equal(t, "tok", result.Session.Token)
	// The cached role is trusted as-is until the next successful verification.
	assert.True(t, result.Session.IsAdmin())
	assert.False(t, result.ClearPersisted)
}

func TestBootstrapClearsStateWithoutUsableCache(t *testing.T) {
	resolver := &stubResolver{err: errors.New("401")}

	for _, cached := range []*user.User{nil, {}} {
		result := Bootstrap(context.Background(), resolver, "tok", cached)
		assert.Nil(t, result.Session)
		assert.True(t, result.ClearPersisted)
	}
}
