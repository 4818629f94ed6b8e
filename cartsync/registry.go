package cartsync

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Registry keeps one Syncer per cart session so the guard outlives a single
// request. Sessions unused for longer than ttl are dropped by Sweep.
type Registry struct {
	fetcher CustomerFetcher
	logger  *zap.Logger
	lang    string
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	syncer   *Syncer
	lastUsed time.Time
}

func NewRegistry(fetcher CustomerFetcher, logger *zap.Logger, lang string, ttl time.Duration) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Registry{
		fetcher:  fetcher,
		logger:   logger.Named("cartsync"),
		lang:     lang,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Syncer returns the syncer of sessionID, creating it on first use.
func (r *Registry) Syncer(sessionID string) *Syncer {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		s = &session{syncer: NewSyncer(r.fetcher, r.logger, r.lang)}
		r.sessions[sessionID] = s
	}
	s.lastUsed = r.now()
	return s.syncer
}

// Forget drops a session, e.g. after checkout.
func (r *Registry) Forget(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// Len is the number of tracked sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops idle sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, s := range r.sessions {
		if s.lastUsed.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx ends.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debug("swept idle cart sessions", zap.Int("removed", n))
			}
		}
	}
}
