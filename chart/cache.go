package chart

import (
	"sync"
	"time"
)

// DefaultTTL is how long a rendered chart is served from a Cache.
const DefaultTTL = 5 * time.Minute

type cacheEntry struct {
	createdAt time.Time
	image     []byte
}

// Cache keeps rendered images for a while. It is safe for concurrent use.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCache returns an empty cache. A non positive ttl means DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl, now: time.Now, entries: make(map[string]cacheEntry)}
}

// Get returns a copy of a fresh image.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(entry.createdAt.Add(c.ttl)) {
		delete(c.entries, key)
		return nil, false
	}
	img := make([]byte, len(entry.image))
	copy(img, entry.image)
	return img, true
}

func (c *Cache) Set(key string, img []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{createdAt: c.now(), image: img}
}

// Render returns the cached image of key, or renders and caches it.
func (c *Cache) Render(key string, render func() ([]byte, error)) ([]byte, error) {
	if img, ok := c.Get(key); ok {
		return img, nil
	}
	img, err := render()
	if err != nil {
		return nil, err
	}
	c.Set(key, img)
	out := make([]byte, len(img))
	copy(out, img)
	return out, nil
}
