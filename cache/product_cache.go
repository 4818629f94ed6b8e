package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

const TTL = 5 * time.Minute

// Loader fetches the active products of a scope ("" is the whole catalog).
type Loader func(ctx context.Context, scope string) ([]models.Product, error)

// ── Product listing cache ────────────────────────────────────────────────────
// One entry per scope. Every load is stamped with a fresh version, so a view
// derived from one load is never served for another. Invalidate drops all
// entries and discards loads that were running when it was called.

type entry struct {
	products  []models.Product
	version   uint64
	fetchedAt time.Time
}

type ProductCache struct {
	load  Loader
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.RWMutex
	version uint64
	gen     uint64
	entries map[string]*entry
}

func NewProductCache(load Loader, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = TTL
	}
	return &ProductCache{
		load:    load,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Get returns the products of scope and the version they belong to. Concurrent
// misses for the same scope share one load.
func (c *ProductCache) Get(ctx context.Context, scope string) ([]models.Product, uint64, error) {
	c.mu.RLock()
	e, ok := c.entries[scope]
	if ok && c.now().Sub(e.fetchedAt) < c.ttl {
		c.mu.RUnlock()
		return e.products, e.version, nil
	}
	gen := c.gen
	c.mu.RUnlock()

	v, err, _ := c.group.Do(scope, func() (any, error) {
		products, err := c.load(ctx, scope)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		c.version++
		e := &entry{products: products, version: c.version, fetchedAt: c.now()}
		// an Invalidate during the load makes this result stale
		if c.gen == gen {
			c.entries[scope] = e
		}
		return e, nil
	})
	if err != nil {
		return nil, 0, err
	}
	e = v.(*entry)
	return e.products, e.version, nil
}

// Version is the most recently issued version.
func (c *ProductCache) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// ── Invalidate everything (call on any product create/update/delete) ─────────

func (c *ProductCache) Invalidate() {
	c.mu.Lock()
	c.gen++
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
}
