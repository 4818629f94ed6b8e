// Package cartstore holds the session cart and wishlist behind a swappable
// persistence backend.
package cartstore

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Backend.Get when nothing is stored under a key.
var ErrNotFound = errors.New("cartstore: key not found")

// Backend persists raw store state. Subscribe delivers the key of every
// change made through any Backend sharing the same medium, until ctx ends.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Subscribe(ctx context.Context, key string) (<-chan struct{}, error)
}

// MemoryBackend keeps state in process. The zero value is not usable; call
// NewMemoryBackend.
type MemoryBackend struct {
	mu    sync.RWMutex
	data  map[string][]byte
	watch map[string][]chan struct{}
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		data:  make(map[string][]byte),
		watch: make(map[string][]chan struct{}),
	}
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryBackend) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)

	// sends happen under the lock so they cannot race the close in Subscribe
	for _, ch := range m.watch[key] {
		select {
		case ch <- struct{}{}:
		default:
			// a notification is already pending
		}
	}
	return nil
}

func (m *MemoryBackend) Subscribe(ctx context.Context, key string) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)

	m.mu.Lock()
	m.watch[key] = append(m.watch[key], ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		list := m.watch[key]
		for i, c := range list {
			if c == ch {
				m.watch[key] = append(list[:i], list[i+1:]...)
				break
			}
		}
		if len(m.watch[key]) == 0 {
			delete(m.watch, key)
		}
		close(ch)
	}()
	return ch, nil
}
