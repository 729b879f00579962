package cache

import (
	"context"
	"fmt"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
)

var (
	flagTrue  = []byte{1}
	flagFalse = []byte{0}
)

// GetFlag reads a boolean decision from the cache. A miss, or any store error,
// is reported as not found so the caller simply recomputes.
func GetFlag(ctx context.Context, c cache.CacheInterface[[]byte], key string) (value bool, found bool, err error) {
	if c == nil {
		return false, false, nil
	}

	raw, getErr := c.Get(ctx, key)
	if getErr != nil {
		// - cache miss is not an error
		return false, false, nil
	}

	if len(raw) != 1 || raw[0] > 1 {
		return false, false, fmt.Errorf("cache: corrupted flag for key '%s'", key)
	}

	return raw[0] == 1, true, nil
}

// SetFlag stores a boolean decision. Store failures are returned wrapped with the key.
func SetFlag(ctx context.Context, c cache.CacheInterface[[]byte], key string, value bool, opts ...store.Option) error {
	if c == nil {
		return nil
	}

	raw := flagFalse
	if value {
		raw = flagTrue
	}

	if err := c.Set(ctx, key, raw, opts...); err != nil {
		return fmt.Errorf("cache: failed to set key '%s': %w", key, err)
	}
	return nil
}
