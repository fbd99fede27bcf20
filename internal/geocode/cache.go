package geocode

import "context"

// Store is the durable backing for the geocode cache.
type Store interface {
	Load(ctx context.Context) (map[string]Result, error)
	Flush(ctx context.Context, entries map[string]Result) error
}

// Cache is the parcel-keyed geocode cache with an explicit load/flush
// lifecycle: constructed once per run, loaded before enrichment, flushed on
// completion. A nil store gives a purely in-memory cache.
//
// Cache is not safe for concurrent writers; the enrichment loop is the
// single writer by design.
type Cache struct {
	store   Store
	entries map[string]Result
}

// NewCache creates a cache over the given store.
func NewCache(store Store) *Cache {
	return &Cache{store: store, entries: make(map[string]Result)}
}

// Load populates the cache from the store, replacing any in-memory entries.
func (c *Cache) Load(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	entries, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = make(map[string]Result)
	}
	c.entries = entries
	return nil
}

// Flush persists the cache to the store.
func (c *Cache) Flush(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	return c.store.Flush(ctx, c.entries)
}

// Get returns the cached result for a parcel. The second return value is
// false only when the parcel has never been looked up; a cached all-null
// result is a hit.
func (c *Cache) Get(parcelNumber string) (Result, bool) {
	r, ok := c.entries[parcelNumber]
	return r, ok
}

// Put records a lookup outcome, success or null-result alike.
func (c *Cache) Put(parcelNumber string, r Result) {
	c.entries[parcelNumber] = r
}

// Len reports the number of cached parcels.
func (c *Cache) Len() int {
	return len(c.entries)
}
