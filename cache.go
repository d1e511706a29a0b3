package showcase

import (
	"context"
	"sync"
	"time"

	"github.com/eringen/showcase/gallery"
)

type cacheEntry struct {
	records []gallery.Record
	fetched time.Time
}

// RecordCache is an in-memory, per-route cache of content records with TTL.
type RecordCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	source  gallery.Lister
	onLoad  func(route string)
}

// NewRecordCache creates a RecordCache backed by the given source.
func NewRecordCache(source gallery.Lister, ttl time.Duration) *RecordCache {
	return &RecordCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		source:  source,
	}
}

func (c *RecordCache) valid(route string) ([]gallery.Record, bool) {
	e, ok := c.entries[route]
	if !ok || time.Since(e.fetched) >= c.ttl {
		return nil, false
	}
	return e.records, true
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *RecordCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// ListUnderRoute returns cached records for route, loading them from the
// source when missing or expired. It tries a read lock first and only
// takes the write lock for a reload.
func (c *RecordCache) ListUnderRoute(ctx context.Context, route string) ([]gallery.Record, error) {
	c.mu.RLock()
	recs, ok := c.valid(route)
	c.mu.RUnlock()
	if ok {
		return recs, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if recs, ok := c.valid(route); ok {
		return recs, nil
	}
	recs, err := c.source.ListUnderRoute(ctx, route)
	if err != nil {
		return nil, err
	}
	c.entries[route] = cacheEntry{records: recs, fetched: time.Now()}
	if c.onLoad != nil {
		c.onLoad(route)
	}
	return recs, nil
}

// Find returns the record with the given route from the section it
// belongs to.
func (c *RecordCache) Find(ctx context.Context, section, route string) (gallery.Record, error) {
	recs, err := c.ListUnderRoute(ctx, section)
	if err != nil {
		return gallery.Record{}, err
	}
	for _, r := range recs {
		if r.Route == route {
			return r, nil
		}
	}
	return gallery.Record{}, ErrNotFound
}
