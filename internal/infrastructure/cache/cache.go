package cache

import (
	"context"
	"fmt"

	"github.com/apper-canvas/nutriscancore/internal/domain"
)

// Backend names accepted by New
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Stats is a point-in-time view of a cache backend
type Stats struct {
	Backend string `json:"backend"`
	Entries int64  `json:"entries"`
	Hits    int64  `json:"hits"`
	Misses  int64  `json:"misses"`
}

// Store is a cache backend the server can report on and shut down
type Store interface {
	domain.CacheRepository
	Stats(ctx context.Context) (Stats, error)
	Close() error
}

// Options selects and configures a backend
type Options struct {
	Backend   string
	RedisURL  string
	KeyPrefix string
}

// New opens the backend named by opts.Backend
func New(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendMemory, "":
		return NewMemoryCache(DefaultCleanupInterval), nil
	case BackendRedis:
		c, err := NewRedisCache(ctx, opts.RedisURL, opts.KeyPrefix)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
}
