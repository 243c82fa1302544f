package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventcms_backend/internal/cache"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := cache.NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryCacheMiss(t *testing.T) {
	c := cache.NewMemoryCache()
	defer c.Close()

	_, err := c.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := cache.NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestMemoryCacheDelete(t *testing.T) {
	c := cache.NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))
	require.NoError(t, c.Delete(ctx, "a", "b", "missing"))

	_, err := c.Get(ctx, "a")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
	_, err = c.Get(ctx, "b")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestMemoryCacheCopiesValues(t *testing.T) {
	c := cache.NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	src := []byte("original")
	require.NoError(t, c.Set(ctx, "k", src, 0))
	src[0] = 'X'

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestRememberComputesOnceUntilForgotten(t *testing.T) {
	c := cache.NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	calls := 0
	compute := func() ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	got, err := cache.Remember(ctx, c, "list", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, calls)

	got, err = cache.Remember(ctx, c, "list", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, calls)

	cache.Forget(ctx, c, "list")

	_, err = cache.Remember(ctx, c, "list", time.Minute, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRememberPropagatesComputeError(t *testing.T) {
	c := cache.NewMemoryCache()
	defer c.Close()

	wantErr := errors.New("db down")
	_, err := cache.Remember(context.Background(), c, "k", time.Minute, func() (int, error) {
		return 0, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	// Failed computations must not poison the cache.
	_, err = c.Get(context.Background(), "k")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}
