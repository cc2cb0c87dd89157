// Package cache implements the read-through response cache for list and
// detail endpoints. Entries hold serialized response bodies keyed by entity
// type plus record id (detail) or entity type plus a normalized query
// signature (list). Invalidation is explicit: mutations delete the affected
// detail key and retire the whole list-key family for the entity; the TTL is
// only a safety net for missed invalidations.
package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// DefaultTTL bounds the lifetime of every cache entry.
const DefaultTTL = 10 * time.Minute

// keyPrefix namespaces every key the cache writes.
const keyPrefix = "library:"

// Cache entity types.
const (
	EntityBooks   = "books"
	EntityReaders = "readers"
	EntityBorrows = "borrows"
)

// Cache wraps an in-memory TTL store. A nil *Cache is valid: every read
// misses and every write is a no-op, so a disabled or unavailable cache
// degrades to direct repository reads without affecting correctness.
type Cache struct {
	entries *ttlcache.Cache[string, []byte]

	// generations holds a counter per entity type which is embedded in
	// every list key. Bumping the counter makes all previously written
	// list keys unreachable, which is how a whole key family is
	// invalidated without a pattern-delete.
	mu          sync.Mutex
	generations map[string]uint64
}

// New creates a cache whose entries expire after ttl. A non-positive ttl
// falls back to DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	entries := ttlcache.New(
		ttlcache.WithTTL[string, []byte](ttl),
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)
	go entries.Start()
	return &Cache{
		entries:     entries,
		generations: make(map[string]uint64),
	}
}

// Stop terminates the background expiry loop.
func (c *Cache) Stop() {
	if c == nil {
		return
	}
	c.entries.Stop()
}

// Get returns the cached value for key, or a miss.
func (c *Cache) Get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	item := c.entries.Get(key)
	if item == nil {
		return nil, false
	}
	return item.Value(), true
}

// Set stores value under key with the cache's TTL.
func (c *Cache) Set(key string, value []byte) {
	if c == nil {
		return
	}
	c.entries.Set(key, value, ttlcache.DefaultTTL)
}

// Delete removes the given keys.
func (c *Cache) Delete(keys ...string) {
	if c == nil {
		return
	}
	for _, key := range keys {
		c.entries.Delete(key)
	}
}

// DetailKey returns the cache key for a single record, e.g. "library:books:42".
func (c *Cache) DetailKey(entity string, id int64) string {
	return fmt.Sprintf("%s%s:%d", keyPrefix, entity, id)
}

// ListKey returns the cache key for a list response under the entity's
// current generation.
func (c *Cache) ListKey(entity, signature string) string {
	var gen uint64
	if c != nil {
		c.mu.Lock()
		gen = c.generations[entity]
		c.mu.Unlock()
	}
	return fmt.Sprintf("%s%s:list:g%d:%s", keyPrefix, entity, gen, signature)
}

// InvalidateLists retires every cached list response for an entity type.
// Entries written under the old generation age out by TTL.
func (c *Cache) InvalidateLists(entity string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.generations[entity]++
	c.mu.Unlock()
}

// InvalidateEntity drops the detail entry for a record and every list
// response for its entity type. Called after any mutation touching the
// record, including borrow and return transitions.
func (c *Cache) InvalidateEntity(entity string, id int64) {
	if c == nil {
		return
	}
	c.Delete(c.DetailKey(entity, id))
	c.InvalidateLists(entity)
}

// Signature returns a deterministic representation of the query parameters
// that shape a list response. Parameters are emitted in the order given;
// repeated values are sorted so equivalent queries share one cache entry.
func Signature(qs url.Values, params ...string) string {
	pairs := make([]string, 0, len(params))
	for _, p := range params {
		values := qs[p]
		if len(values) == 0 {
			continue
		}
		sorted := make([]string, len(values))
		copy(sorted, values)
		sort.Strings(sorted)
		pairs = append(pairs, p+"="+strings.Join(sorted, ","))
	}
	return strings.Join(pairs, "&")
}
