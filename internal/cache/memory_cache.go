package cache

import (
	"sync"
	"time"
)

var _ Cache = (*MemoryCache)(nil)

type memoryItem struct {
	value     any
	expiresAt time.Time
}

// MemoryCache is a synchronous map-backed Cache, used in tests where the
// async ristretto buffers get in the way. Expired values are evicted lazily.
type MemoryCache struct {
	items   map[string]memoryItem
	onEvict EvictFunc
	now     func() time.Time
	mutex   sync.Mutex
}

func NewMemoryCache(onEvict EvictFunc) *MemoryCache {
	return &MemoryCache{
		items:   make(map[string]memoryItem),
		onEvict: onEvict,
		now:     time.Now,
	}
}

func (mc *MemoryCache) Get(key string) (any, bool) {
	mc.mutex.Lock()
	item, ok := mc.items[key]
	expired := ok && !item.expiresAt.IsZero() && !mc.now().Before(item.expiresAt)
	if expired {
		delete(mc.items, key)
	}
	mc.mutex.Unlock()

	if expired {
		if mc.onEvict != nil {
			mc.onEvict(item.value)
		}
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return item.value, true
}

func (mc *MemoryCache) SetWithTTL(key string, value any, ttl time.Duration) bool {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	item := memoryItem{value: value}
	if ttl > 0 {
		item.expiresAt = mc.now().Add(ttl)
	}
	mc.items[key] = item
	return true
}

func (mc *MemoryCache) Close() {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()
	mc.items = make(map[string]memoryItem)
}
