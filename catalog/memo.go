package catalog

import (
	"strconv"
	"strings"
	"sync"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// Memo caches snapshots and derived views. A snapshot is identified by its
// scope and version; bumping the version of a scope drops everything derived
// from the older snapshot.
type Memo struct {
	mu        sync.Mutex
	capacity  int
	snapshots map[string]memoSnapshot
	views     map[string][]models.Product
}

type memoSnapshot struct {
	version uint64
	snap    *Snapshot
}

// NewMemo creates a memo holding at most capacity views.
func NewMemo(capacity int) *Memo {
	if capacity < 1 {
		capacity = 256
	}
	return &Memo{
		capacity:  capacity,
		snapshots: make(map[string]memoSnapshot),
		views:     make(map[string][]models.Product),
	}
}

// View returns the view of products under criteria, computing it at most once
// per (scope, version, criteria). Callers must treat the result as read-only.
func (m *Memo) View(scope string, version uint64, products []models.Product, criteria models.FilterCriteria) []models.Product {
	key := scope + "#" + strconv.FormatUint(version, 10) + "#" + criteria.Key()

	m.mu.Lock()
	if v, ok := m.views[key]; ok {
		m.mu.Unlock()
		return v
	}
	snap := m.snapshotLocked(scope, version, products)
	m.mu.Unlock()

	view := snap.View(criteria)

	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.snapshots[scope]; ok && cur.version != version {
		// a newer catalog arrived while we computed; don't cache a stale view
		return view
	}
	if len(m.views) >= m.capacity {
		m.views = make(map[string][]models.Product)
	}
	m.views[key] = view
	return view
}

// Len is the number of cached views.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.views)
}

func (m *Memo) snapshotLocked(scope string, version uint64, products []models.Product) *Snapshot {
	cur, ok := m.snapshots[scope]
	if ok && cur.version == version {
		return cur.snap
	}
	if ok && cur.version > version {
		return Normalize(products)
	}
	prefix := scope + "#"
	for k := range m.views {
		if strings.HasPrefix(k, prefix) {
			delete(m.views, k)
		}
	}
	snap := Normalize(products)
	m.snapshots[scope] = memoSnapshot{version: version, snap: snap}
	return snap
}
