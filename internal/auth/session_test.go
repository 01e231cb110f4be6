package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmview/hotel-booking-web/internal/user"
)

func TestSessionCodecRoundTrip(t *testing.T) {
	codec := NewSessionCodec("test-secret", time.Hour)
	u := &user.User{ID: "u-1", Name: "Ada", Email: "ada@example.com", Role: user.RoleAdmin}

	value, err := codec.Encode("backend-token", u)
	require.NoError(t, err)
	require.NotEmpty(t, value)

	token, cached, err := codec.Decode(value)
	require.NoError(t, err)
	assert.Equal(t, "backend-token", token)
	require.NotNil(t, cached)
	assert.Equal(t, *u, *cached)
}

func TestSessionCodecRejectsTamperedValue(t *testing.T) {
	codec := NewSessionCodec("test-secret", time.Hour)
	u := &user.User{ID: "u-1", Role: user.RoleUser}

	value, err := codec.Encode("backend-token", u)
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(value, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, _, err = codec.Decode(tampered)
	assert.Error(t, err)
}

func TestSessionCodecRejectsWrongSecret(t *testing.T) {
	u := &user.User{ID: "u-1"}

	value, err := NewSessionCodec("secret-a", time.Hour).Encode("tok", u)
	require.NoError(t, err)

	_, _, err = NewSessionCodec("secret-b", time.Hour).Decode(value)
	assert.Error(t, err)
}

func TestSessionCodecRejectsExpiredValue(t *testing.T) {
	codec := NewSessionCodec("test-secret", -time.Minute)
	u := &user.User{ID: "u-1"}

	value, err := codec.Encode("tok", u)
	require.NoError(t, err)

	_, _, err = codec.Decode(value)
	assert.Error(t, err)
}

func TestSessionIsAdmin(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.IsAdmin())
	assert.False(t, (&Session{User: &user.User{Role: user.RoleUser}}).IsAdmin())
	assert.True(t, (&Session{User: &user.User{Role: user.RoleAdmin}}).IsAdmin())
}
