package ratelimit

import (
	"adsync/internal/core/port"
	"adsync/internal/metrics"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrUnknownPolicy is returned by Admit for a policy name that was never
// configured.
var ErrUnknownPolicy = errors.New("unknown rate limit policy")

// Policy is a named fixed-window limit: at most Limit requests per key in
// each Window. Bursts of up to twice the limit are possible across a
// window boundary.
type Policy struct {
	Name   string
	Limit  int
	Window time.Duration
}

// Store keeps the per key counters. Hit counts one request against key
// and returns the count inside the current window and the time the window
// resets, starting a new window when none exists or the old one expired.
// Implementations must make Hit atomic per key.
type Store interface {
	Hit(ctx context.Context, key string, window time.Duration, now time.Time) (int, time.Time, error)
	// Sweep drops expired windows and returns how many were removed. It is
	// advisory cleanup; expiry is always checked in Hit.
	Sweep(ctx context.Context, now time.Time) (int, error)
}

// Limiter is the admission controller. It implements port.Admitter.
type Limiter struct {
	store    Store
	policies map[string]Policy
	logger   *slog.Logger
	now      func() time.Time
	sweep    time.Duration
}

var _ port.Admitter = (*Limiter)(nil)

// Option customises a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// WithSweepInterval sets how often Run sweeps expired windows.
func WithSweepInterval(d time.Duration) Option {
	return func(l *Limiter) {
		if d > 0 {
			l.sweep = d
		}
	}
}

// NewLimiter creates a limiter over store with the given policies.
func NewLimiter(store Store, policies []Policy, logger *slog.Logger, opts ...Option) *Limiter {
	l := &Limiter{
		store:    store,
		policies: make(map[string]Policy, len(policies)),
		logger:   logger,
		now:      time.Now,
		sweep:    5 * time.Minute,
	}
	for _, p := range policies {
		l.policies[p.Name] = p
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Policy returns the configured policy called name.
func (l *Limiter) Policy(name string) (Policy, bool) {
	p, ok := l.policies[name]
	return p, ok
}

// Admit counts one request for key under policy. A failing counter store
// admits the request.
func (l *Limiter) Admit(ctx context.Context, key, policy string) (port.Decision, error) {
	p, ok := l.policies[policy]
	if !ok {
		return port.Decision{}, fmt.Errorf("%w: %s", ErrUnknownPolicy, policy)
	}

	now := l.now()
	count, resetAt, err := l.store.Hit(ctx, p.Name+":"+key, p.Window, now)
	if err != nil {
		metrics.AdmissionDecisions.WithLabelValues(p.Name, "store_error").Inc()
		l.logger.Warn("rate limit store failed, admitting",
			slog.String("policy", p.Name), slog.Any("error", err))
		return port.Decision{
			Policy:     p.Name,
			Allowed:    true,
			Limit:      p.Limit,
			Remaining:  p.Limit,
			ResetAfter: p.Window,
		}, nil
	}

	d := port.Decision{
		Policy:     p.Name,
		Allowed:    count <= p.Limit,
		Limit:      p.Limit,
		Remaining:  max(0, p.Limit-count),
		ResetAfter: max(0, resetAt.Sub(now)),
	}
	if d.Allowed {
		metrics.AdmissionDecisions.WithLabelValues(p.Name, "allowed").Inc()
	} else {
		metrics.AdmissionDecisions.WithLabelValues(p.Name, "denied").Inc()
		l.logger.Debug("admission denied",
			slog.String("policy", p.Name),
			slog.String("key", key),
			slog.Int("reset_seconds", d.ResetSeconds()))
	}
	return d, nil
}

// Run sweeps expired windows until ctx is cancelled. It always returns nil
// so it can sit in an errgroup next to the server.
func (l *Limiter) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.sweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed, err := l.store.Sweep(ctx, l.now())
			if err != nil {
				l.logger.Warn("rate limit sweep failed", slog.Any("error", err))
				continue
			}
			if removed > 0 {
				l.logger.Debug("rate limit windows swept", slog.Int("removed", removed))
			}
		}
	}
}
