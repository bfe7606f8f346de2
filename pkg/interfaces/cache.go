package interfaces

import (
	"context"
	"time"
)

// Cache memoizes values under a key for a bounded time.
// Get fails for missing and expired keys alike.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
