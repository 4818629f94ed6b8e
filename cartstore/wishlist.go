package cartstore

import (
	"context"
	"sync"
)

// Wishlist is an ordered set of product ids.
type Wishlist struct {
	backend Backend
	key     string

	mu  sync.Mutex
	ids []string
}

func OpenWishlist(ctx context.Context, backend Backend, key string) (*Wishlist, error) {
	w := &Wishlist{backend: backend, key: key}
	var ids []string
	if err := load(ctx, backend, key, &ids); err != nil {
		return nil, err
	}
	w.ids = ids
	return w, nil
}

func (w *Wishlist) Items() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string{}, w.ids...)
}

func (w *Wishlist) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.indexLocked(productID) >= 0
}

// Add is a no-op when productID is already present.
func (w *Wishlist) Add(ctx context.Context, productID string) error {
	if productID == "" {
		return ErrInvalidItem
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.indexLocked(productID) >= 0 {
		return nil
	}
	next := append(append([]string{}, w.ids...), productID)
	if err := save(ctx, w.backend, w.key, next); err != nil {
		return err
	}
	w.ids = next
	return nil
}

func (w *Wishlist) Remove(ctx context.Context, productID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := w.indexLocked(productID)
	if i < 0 {
		return ErrItemNotFound
	}
	next := append(append([]string{}, w.ids[:i]...), w.ids[i+1:]...)
	if err := save(ctx, w.backend, w.key, next); err != nil {
		return err
	}
	w.ids = next
	return nil
}

func (w *Wishlist) indexLocked(productID string) int {
	for i, id := range w.ids {
		if id == productID {
			return i
		}
	}
	return -1
}
