package galleria

import (
	"sync"
	"time"
)

// listingCache caches the image-name listing for a short TTL so a busy
// gallery page does not hit the directory on every request. Uploads
// invalidate it.
type listingCache struct {
	mu      sync.RWMutex
	names   []string
	fetched time.Time
	ttl     time.Duration
	library *Library
}

func newListingCache(l *Library, ttl time.Duration) *listingCache {
	return &listingCache{library: l, ttl: ttl}
}

func (c *listingCache) valid() bool {
	return c.names != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read lists the directory again.
func (c *listingCache) Invalidate() {
	c.mu.Lock()
	c.names = nil
	c.mu.Unlock()
}

// ImageNames returns the cached listing, refreshing it when stale. It
// tries a read lock first; only takes a write lock if a reload is needed.
func (c *listingCache) ImageNames() ([]string, error) {
	c.mu.RLock()
	if c.valid() {
		names := c.names
		c.mu.RUnlock()
		return names, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.names, nil
	}
	names, err := c.library.ImageNames()
	if err != nil {
		return nil, err
	}
	c.names = names
	c.fetched = time.Now()
	return names, nil
}
