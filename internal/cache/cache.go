// Package cache provides a TTL-expiring key/value cache persisted in the durable store.
//
// Expiry is lazy: an entry older than the TTL is treated as absent and deleted
// on the read that finds it. There is no background sweep and no size bound.
package cache

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/samber/mo"
	"github.com/vodhub/vodhub/constant"
	"github.com/vodhub/vodhub/log"
	"github.com/vodhub/vodhub/storage"
)

// DefaultTTL is the freshness window used for category listings.
const DefaultTTL = time.Hour

// entry is the persisted form of a cached value.
type entry[T any] struct {
	Value    T     `json:"value"`
	StoredAt int64 `json:"storedAt"`
}

// TTL memoizes values of type T under string keys.
// The mutex serialises access within one process; writers in other processes are not reconciled.
type TTL[T any] struct {
	store  storage.Store
	ttl    time.Duration
	prefix string
	now    func() time.Time
	mu     sync.Mutex
}

// Option configures a TTL cache.
type Option func(*options)

type options struct {
	prefix string
	now    func() time.Time
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithPrefix namespaces every key, so Clear only drops what this cache wrote.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// New creates a cache over store. A non-positive ttl falls back to DefaultTTL.
func New[T any](store storage.Store, ttl time.Duration, opts ...Option) *TTL[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &TTL[T]{
		store:  store,
		ttl:    ttl,
		prefix: o.prefix,
		now:    o.now,
	}
}

// TTL returns the freshness window.
func (c *TTL[T]) TTL() time.Duration {
	return c.ttl
}

// Get returns the value stored under key if it is still fresh.
func (c *TTL[T]) Get(key string) mo.Option[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := c.prefix + key
	raw, ok, err := c.store.Get(k)
	if err != nil {
		log.Warnf("cache read %s: %v", k, err)
		return mo.None[T]()
	}
	if !ok {
		return mo.None[T]()
	}

	var e entry[T]
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		log.Warnf("cache entry %s is corrupt, evicting: %v", k, err)
		c.evict(k)
		return mo.None[T]()
	}

	age := c.now().Sub(time.UnixMilli(e.StoredAt))
	if age >= c.ttl {
		log.Debugf("cache entry %s expired %s ago", k, age-c.ttl)
		c.evict(k)
		return mo.None[T]()
	}

	return mo.Some(e.Value)
}

// Set stores value under key, overwriting any prior entry, and persists immediately.
func (c *TTL[T]) Set(key string, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.Marshal(entry[T]{
		Value:    value,
		StoredAt: c.now().UnixMilli(),
	})
	if err != nil {
		return err
	}

	return c.store.Set(c.prefix+key, string(data))
}

// Delete drops key regardless of freshness.
func (c *TTL[T]) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.Delete(c.prefix + key)
}

// Clear drops every entry under the cache prefix. Without a prefix it drops the keys
// carrying the cache suffix, so histories sharing the store survive.
func (c *TTL[T]) Clear() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.prefix != "" {
		return storage.DeletePrefix(c.store, c.prefix)
	}

	keys, err := c.store.Keys()
	if err != nil {
		return 0, err
	}

	var n int
	for _, k := range keys {
		if !strings.Contains(k, constant.CacheKeySuffix) {
			continue
		}
		if err := c.store.Delete(k); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (c *TTL[T]) evict(key string) {
	if err := c.store.Delete(key); err != nil {
		log.Warnf("cache evict %s: %v", key, err)
	}
}
