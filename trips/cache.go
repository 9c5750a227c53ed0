package trips

import (
	"strings"
	"sync"
)

// Cache keeps one parsed RecordSet per city.
//
// Thread safety: safe for concurrent use. Returned sets are shared and must
// be treated as read-only.
type Cache struct {
	store *Store

	mu   sync.Mutex
	sets map[string]*RecordSet
}

// NewCache wraps store with a per-city cache.
func NewCache(store *Store) *Cache {
	return &Cache{store: store, sets: map[string]*RecordSet{}}
}

// Load returns the cached set for city, loading it on first use. Failed loads
// are not cached.
func (c *Cache) Load(city string) (*RecordSet, error) {
	key := strings.ToLower(strings.TrimSpace(city))
	c.mu.Lock()
	defer c.mu.Unlock()
	if rs, ok := c.sets[key]; ok {
		return rs, nil
	}
	rs, err := c.store.Load(key)
	if err != nil {
		return nil, err
	}
	c.sets[key] = rs
	return rs, nil
}

// Invalidate drops the cached set for city so the next Load re-reads it.
func (c *Cache) Invalidate(city string) {
	c.mu.Lock()
	delete(c.sets, strings.ToLower(strings.TrimSpace(city)))
	c.mu.Unlock()
}
