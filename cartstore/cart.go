package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

var (
	ErrInvalidQuantity = errors.New("cartstore: quantity must be positive")
	ErrInvalidItem     = errors.New("cartstore: item id is required")
	ErrItemNotFound    = errors.New("cartstore: item not in cart")
)

// Cart is the session (working) cart. All mutations are serialized and
// persisted before subscribers are notified.
type Cart struct {
	backend Backend
	key     string

	mu    sync.Mutex
	items []models.CartLineItem

	subMu   sync.Mutex
	subs    map[int]func([]models.CartLineItem)
	nextSub int
}

// OpenCart loads the cart stored under key. A key with no state yields an
// empty cart.
func OpenCart(ctx context.Context, backend Backend, key string) (*Cart, error) {
	c := &Cart{
		backend: backend,
		key:     key,
		subs:    make(map[int]func([]models.CartLineItem)),
	}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Key identifies the cart in its backend.
func (c *Cart) Key() string { return c.key }

// Reload replaces the in-memory lines with the persisted ones.
func (c *Cart) Reload(ctx context.Context) error {
	var items []models.CartLineItem
	if err := load(ctx, c.backend, c.key, &items); err != nil {
		return err
	}
	c.mu.Lock()
	c.items = items
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snapshot)
	return nil
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []models.CartLineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// GetItem returns the line with the given id.
func (c *Cart) GetItem(id string) (models.CartLineItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexLocked(id); i >= 0 {
		return c.items[i], true
	}
	return models.CartLineItem{}, false
}

// HasVariantOf reports whether any line is a variant selection of productID,
// i.e. its id starts with "<productID>-".
func (c *Cart) HasVariantOf(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := productID + "-"
	for _, it := range c.items {
		if strings.HasPrefix(it.ID, prefix) {
			return true
		}
	}
	return false
}

// AddItem appends a line, or increases the quantity of an existing line with
// the same id.
func (c *Cart) AddItem(ctx context.Context, item models.CartLineItem, quantity int) error {
	if strings.TrimSpace(item.ID) == "" {
		return ErrInvalidItem
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return c.mutate(ctx, func(items []models.CartLineItem) ([]models.CartLineItem, error) {
		for i := range items {
			if items[i].ID == item.ID {
				items[i].Quantity += quantity
				return items, nil
			}
		}
		item.Quantity = quantity
		return append(items, item), nil
	})
}

// UpdateItemQuantity sets the quantity of a line; zero or less removes it.
func (c *Cart) UpdateItemQuantity(ctx context.Context, id string, quantity int) error {
	return c.mutate(ctx, func(items []models.CartLineItem) ([]models.CartLineItem, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if quantity <= 0 {
				return append(items[:i], items[i+1:]...), nil
			}
			items[i].Quantity = quantity
			return items, nil
		}
		return nil, ErrItemNotFound
	})
}

// Apply writes a batch of additions and quantity updates as one change.
// Additions run first, so an update may target a line added in the same
// batch. If any action is invalid nothing is written.
func (c *Cart) Apply(ctx context.Context, actions models.CartActions) error {
	for _, item := range actions.ToAdd {
		if strings.TrimSpace(item.ID) == "" {
			return ErrInvalidItem
		}
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return c.mutate(ctx, func(items []models.CartLineItem) ([]models.CartLineItem, error) {
		for _, item := range actions.ToAdd {
			if i := indexOf(items, item.ID); i >= 0 {
				items[i].Quantity += item.Quantity
				continue
			}
			items = append(items, item)
		}
		for _, u := range actions.ToUpdateQuantity {
			i := indexOf(items, u.ID)
			if i < 0 {
				return nil, ErrItemNotFound
			}
			if u.Quantity <= 0 {
				items = append(items[:i], items[i+1:]...)
				continue
			}
			items[i].Quantity = u.Quantity
		}
		return items, nil
	})
}

// RemoveItem deletes a line.
func (c *Cart) RemoveItem(ctx context.Context, id string) error {
	return c.UpdateItemQuantity(ctx, id, 0)
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) error {
	return c.mutate(ctx, func([]models.CartLineItem) ([]models.CartLineItem, error) {
		return []models.CartLineItem{}, nil
	})
}

// Subscribe registers fn to receive the lines after every change. The
// returned function unregisters it.
func (c *Cart) Subscribe(fn func(items []models.CartLineItem)) (unsubscribe func()) {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// Watch reloads the cart whenever another writer changes it, until ctx ends.
// Reload errors are passed to onError when it is non-nil.
func (c *Cart) Watch(ctx context.Context, onError func(error)) error {
	changes, err := c.backend.Subscribe(ctx, c.key)
	if err != nil {
		return err
	}
	go func() {
		for range changes {
			if err := c.Reload(ctx); err != nil && onError != nil && ctx.Err() == nil {
				onError(err)
			}
		}
	}()
	return nil
}

func (c *Cart) mutate(ctx context.Context, fn func([]models.CartLineItem) ([]models.CartLineItem, error)) error {
	c.mu.Lock()
	next, err := fn(c.snapshotLocked())
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if err := save(ctx, c.backend, c.key, next); err != nil {
		c.mu.Unlock()
		return err
	}
	c.items = next
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snapshot)
	return nil
}

func (c *Cart) notify(items []models.CartLineItem) {
	c.subMu.Lock()
	fns := make([]func([]models.CartLineItem), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(append([]models.CartLineItem(nil), items...))
	}
}

func (c *Cart) snapshotLocked() []models.CartLineItem {
	out := make([]models.CartLineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) indexLocked(id string) int {
	return indexOf(c.items, id)
}

func indexOf(items []models.CartLineItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func load(ctx context.Context, b Backend, key string, dst any) error {
	raw, err := b.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func save(ctx context.Context, b Backend, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return b.Set(ctx, key, raw)
}
