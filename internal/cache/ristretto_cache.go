package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

var _ Cache = (*RistrettoCache)(nil)

type RistrettoCache struct {
	mainCache *ristretto.Cache
}

// NewRistrettoCache holds up to maxItems values, each costs 1.
func NewRistrettoCache(maxItems int64, onEvict EvictFunc) (*RistrettoCache, error) {
	config := &ristretto.Config{
		NumCounters:        maxItems * 10, // number of keys to track frequency of
		MaxCost:            maxItems,      // cost counts items, not bytes
		BufferItems:        64,            // number of keys per Get buffer
		IgnoreInternalCost: true,
	}
	if onEvict != nil {
		config.OnEvict = func(item *ristretto.Item) {
			onEvict(item.Value)
		}
	}

	mainCache, err := ristretto.NewCache(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %s", err)
	}

	return &RistrettoCache{
		mainCache: mainCache,
	}, nil
}

func (rc *RistrettoCache) Get(key string) (any, bool) {
	return rc.mainCache.Get(key)
}

// SetWithTTL waits for the write buffers, so the value is visible to the next Get.
func (rc *RistrettoCache) SetWithTTL(key string, value any, ttl time.Duration) bool {
	ok := rc.mainCache.SetWithTTL(key, value, 1, ttl)
	rc.mainCache.Wait()
	return ok
}

func (rc *RistrettoCache) Close() {
	rc.mainCache.Close()
}
