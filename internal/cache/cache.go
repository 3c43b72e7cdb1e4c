package cache

import (
	"sync"
	"time"
)

// Key identifies one cache entry. Using a comparable struct instead of a
// concatenated string means two different filter combinations can never
// collide on formatting.
type Key struct {
	Kind        string
	Query       string
	ReleaseDate string
	Platform    int64
	Genre       int64
	ExternalID  int64
}

const (
	kindSearch = "search"
	kindFilter = "filter"
	kindDetail = "detail"
)

// SearchKey caches results of a free-text catalog search.
func SearchKey(query string) Key {
	return Key{Kind: kindSearch, Query: query}
}

// FilterKey caches results of a filtered catalog query. Absent numeric
// filters are zero, which is unambiguous because the key also carries
// the kind and the date field.
func FilterKey(releaseDate string, platform, genre int64) Key {
	return Key{Kind: kindFilter, ReleaseDate: releaseDate, Platform: platform, Genre: genre}
}

// DetailKey marks that the mirror already holds the row for an external
// id. The cached value is just that fact; the data itself is re-read
// from the mirror.
func DetailKey(externalID int64) Key {
	return Key{Kind: kindDetail, ExternalID: externalID}
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is an in-process TTL key-value store. Get distinguishes "absent"
// from "present but zero" via its second return value. Expired entries
// are dropped lazily on read and swept by a background janitor.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]entry
	stop    chan struct{}
	once    sync.Once
}

// New creates a cache whose janitor sweeps expired entries every
// sweepInterval. Close stops the janitor.
func New(sweepInterval time.Duration) *Cache {
	c := &Cache{
		entries: make(map[Key]entry),
		stop:    make(chan struct{}),
	}
	go c.janitor(sweepInterval)
	return c
}

func (c *Cache) Get(k Key) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[k]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a Set may have raced.
		if cur, ok := c.entries[k]; ok && time.Now().After(cur.expiresAt) {
			delete(c.entries, k)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(k Key, v any, ttl time.Duration) {
	c.mu.Lock()
	c.entries[k] = entry{value: v, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			for k, e := range c.entries {
				if now.After(e.expiresAt) {
					delete(c.entries, k)
				}
			}
			c.mu.Unlock()
		}
	}
}
