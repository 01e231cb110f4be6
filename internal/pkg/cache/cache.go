package cache

import (
	"context"
	"time"
)

// Cache is a time-boxed result cache keyed by a caller-supplied string.
// Values are stored as JSON so both implementations behave the same.
type Cache interface {
	// Get unmarshals the cached value for key into dest and reports whether a
	// fresh entry was found.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete drops the entry for key, if any. Used for manual invalidation.
	Delete(ctx context.Context, key string) error
}
