package cartsync

import (
	"context"

	"go.uber.org/zap"

	"github.com/ovs-innovation/farmcykart1-sub002/models"
)

// CustomerFetcher loads a customer with its durable cart populated.
type CustomerFetcher interface {
	FetchCustomer(ctx context.Context, customerID string) (*models.Customer, error)
}

// LocalCart is the part of the session cart store the syncer writes to.
// Apply must write all actions or none.
type LocalCart interface {
	Items() []models.CartLineItem
	Apply(ctx context.Context, actions models.CartActions) error
}

// Outcome tells the caller what a trigger did.
type Outcome string

const (
	OutcomeApplied   Outcome = "applied"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeReset     Outcome = "reset"
	OutcomeFailed    Outcome = "failed"
	OutcomeDiscarded Outcome = "discarded"
)

// Result of one trigger. Actions is only set when Outcome is OutcomeApplied.
type Result struct {
	Outcome Outcome
	Actions models.CartActions
}

// Syncer reconciles one session. Trigger is meant to be called on every
// request of the session; the guard makes all but the first call per login
// no-ops.
type Syncer struct {
	guard   Guard
	fetcher CustomerFetcher
	logger  *zap.Logger
	lang    string
}

// NewSyncer creates a syncer for one session.
func NewSyncer(fetcher CustomerFetcher, logger *zap.Logger, lang string) *Syncer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if lang == "" {
		lang = models.DefaultLanguage
	}
	return &Syncer{fetcher: fetcher, logger: logger, lang: lang}
}

// State exposes the guard state, mostly for diagnostics.
func (s *Syncer) State() (State, string) {
	return s.guard.Snapshot()
}

// Trigger runs the reconciliation for identity if the guard admits it. An
// empty identity means signed out and resets the guard. Failures are logged
// and leave the cart untouched; they are never returned to the caller.
//
// If ctx ends while the customer is being fetched, the result is discarded
// and the guard goes back to idle.
func (s *Syncer) Trigger(ctx context.Context, identity string, cart LocalCart) Result {
	attempt, ok := s.guard.Begin(identity)
	if !ok {
		if identity == "" {
			return Result{Outcome: OutcomeReset}
		}
		return Result{Outcome: OutcomeSkipped}
	}

	log := s.logger.With(zap.String("customer_id", identity))

	customer, err := s.fetcher.FetchCustomer(ctx, identity)
	if ctx.Err() != nil {
		s.guard.Abandon(attempt)
		log.Debug("cart sync discarded", zap.Error(ctx.Err()))
		return Result{Outcome: OutcomeDiscarded}
	}
	if err != nil {
		s.guard.Fail(attempt)
		log.Warn("cart sync fetch failed", zap.Error(err))
		return Result{Outcome: OutcomeFailed}
	}
	if !s.guard.Current(attempt) {
		log.Debug("cart sync superseded before apply")
		return Result{Outcome: OutcomeDiscarded}
	}

	var serverCart []models.CartEntry
	if customer != nil {
		serverCart = customer.Cart
	}
	actions := Reconcile(serverCart, cart.Items(), s.lang)

	if err := cart.Apply(ctx, actions); err != nil {
		s.guard.Fail(attempt)
		log.Warn("cart sync apply failed", zap.Error(err))
		return Result{Outcome: OutcomeFailed}
	}

	s.guard.Succeed(attempt)
	log.Info("cart sync applied",
		zap.Int("added", len(actions.ToAdd)),
		zap.Int("updated", len(actions.ToUpdateQuantity)),
	)
	return Result{Outcome: OutcomeApplied, Actions: actions}
}
