package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the key/value store the services invalidate and read through.
// Implementations must be safe for concurrent use. Values are opaque
// byte slices; serialization lives in the helpers below.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Remember returns the cached value for key, computing and storing it on
// a miss. Cache failures degrade to the computed value rather than
// failing the request.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	var zero T

	if raw, err := c.Get(ctx, key); err == nil {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		// Unreadable entry; fall through and recompute.
		_ = c.Delete(ctx, key)
	}

	v, err := compute()
	if err != nil {
		return zero, err
	}

	if raw, err := json.Marshal(v); err == nil {
		_ = c.Set(ctx, key, raw, ttl)
	}
	return v, nil
}

// Forget drops the given keys, ignoring misses.
func Forget(ctx context.Context, c Cache, keys ...string) {
	if len(keys) == 0 {
		return
	}
	_ = c.Delete(ctx, keys...)
}
