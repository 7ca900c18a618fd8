package cache

import "time"

// Cache keeps per-user values for a limited time. Evicted or expired values
// are handed to the EvictFunc the cache was created with.
type Cache interface {
	Get(key string) (any, bool)
	SetWithTTL(key string, value any, ttl time.Duration) bool
	Close()
}

type EvictFunc func(value any)
