package cartsync

import "sync"

// State is the phase of a session's reconciliation.
type State int

const (
	// StateIdle: no identity has been reconciled.
	StateIdle State = iota
	// StateInFlight: an attempt for the current identity is running.
	StateInFlight
	// StateDone: the current identity has been reconciled.
	StateDone
	// StateFailed: the attempt for the current identity failed; it is retried
	// only after the identity changes.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInFlight:
		return "in-flight"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Attempt identifies one admitted run. It goes stale when the guard is reset
// or a newer attempt is admitted.
type Attempt struct {
	Identity string
	seq      uint64
}

// Guard admits at most one reconciliation per identity and never two at once.
type Guard struct {
	mu       sync.Mutex
	state    State
	identity string
	seq      uint64
}

// Begin admits an attempt for identity. It refuses while another attempt is
// in flight and when identity has already been reconciled (or has failed).
// An empty identity (signed out) resets the guard and invalidates any
// running attempt.
func (g *Guard) Begin(identity string) (Attempt, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if identity == "" {
		g.resetLocked()
		return Attempt{}, false
	}
	switch g.state {
	case StateInFlight:
		return Attempt{}, false
	case StateDone, StateFailed:
		if g.identity == identity {
			return Attempt{}, false
		}
	}

	g.seq++
	g.state = StateInFlight
	g.identity = identity
	return Attempt{Identity: identity, seq: g.seq}, true
}

// Current reports whether a is still the running attempt.
func (g *Guard) Current(a Attempt) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentLocked(a)
}

// Succeed moves a running attempt to done.
func (g *Guard) Succeed(a Attempt) bool { return g.finish(a, StateDone) }

// Fail moves a running attempt to failed.
func (g *Guard) Fail(a Attempt) bool { return g.finish(a, StateFailed) }

// Abandon returns a running attempt to idle so the same identity can run
// again, used when the caller went away before the result could be applied.
func (g *Guard) Abandon(a Attempt) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.currentLocked(a) {
		return false
	}
	g.resetLocked()
	return true
}

// Reset forgets the reconciled identity and invalidates any running attempt.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
}

// Snapshot returns the state and the identity it refers to.
func (g *Guard) Snapshot() (State, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state, g.identity
}

func (g *Guard) finish(a Attempt, to State) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.currentLocked(a) {
		return false
	}
	g.state = to
	return true
}

func (g *Guard) currentLocked(a Attempt) bool {
	return g.state == StateInFlight && a.seq == g.seq && a.Identity == g.identity
}

func (g *Guard) resetLocked() {
	g.seq++
	g.state = StateIdle
	g.identity = ""
}
