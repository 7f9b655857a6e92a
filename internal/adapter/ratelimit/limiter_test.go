package ratelimit

import (
	"adsync/internal/config/configs"
	"adsync/internal/core/port"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(store Store, clock *fakeClock) *Limiter {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLimiter(store, PoliciesFromConfig(configs.RateLimit{}), logger, WithClock(clock.Now))
}

func TestLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("admits up to the limit and denies the next", func(t *testing.T) {
		for _, p := range PoliciesFromConfig(configs.RateLimit{}) {
			clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
			l := newTestLimiter(NewMemoryStore(), clock)

			for i := 1; i <= p.Limit; i++ {
				d, err := l.Admit(ctx, "user-1", p.Name)
				require.NoError(t, err)
				assert.True(t, d.Allowed, "%s request %d", p.Name, i)
				assert.Equal(t, p.Limit-i, d.Remaining)
			}

			d, err := l.Admit(ctx, "user-1", p.Name)
			require.NoError(t, err)
			assert.False(t, d.Allowed, p.Name)
			assert.Equal(t, 0, d.Remaining)
			assert.Equal(t, int(p.Window/time.Second), d.ResetSeconds())

			var denied *port.AdmissionDeniedError
			require.ErrorAs(t, d.Err(), &denied)
			assert.Equal(t, p.Name, denied.Decision.Policy)
		}
	})

	t.Run("resets after the window", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		l := newTestLimiter(NewMemoryStore(), clock)

		for i := 0; i < 10; i++ {
			_, _ = l.Admit(ctx, "user-1", port.PolicySync)
		}
		d, _ := l.Admit(ctx, "user-1", port.PolicySync)
		require.False(t, d.Allowed)

		clock.Advance(time.Duration(d.ResetSeconds()) * time.Second)

		d, err := l.Admit(ctx, "user-1", port.PolicySync)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 9, d.Remaining)
		assert.Equal(t, 300, d.ResetSeconds())
	})

	t.Run("reset seconds count down inside the window", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		l := newTestLimiter(NewMemoryStore(), clock)

		_, _ = l.Admit(ctx, "user-1", port.PolicyAPI)
		clock.Advance(45500 * time.Millisecond)
		d, _ := l.Admit(ctx, "user-1", port.PolicyAPI)
		assert.Equal(t, 15, d.ResetSeconds())
	})

	t.Run("keys and policies are independent", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		l := newTestLimiter(NewMemoryStore(), clock)

		for i := 0; i < 3; i++ {
			_, _ = l.Admit(ctx, "user-a", port.PolicySensitive)
		}
		d, _ := l.Admit(ctx, "user-a", port.PolicySensitive)
		assert.False(t, d.Allowed)

		d, _ = l.Admit(ctx, "user-b", port.PolicySensitive)
		assert.True(t, d.Allowed)
		d, _ = l.Admit(ctx, "user-a", port.PolicyAPI)
		assert.True(t, d.Allowed)
	})

	t.Run("unknown policy", func(t *testing.T) {
		l := newTestLimiter(NewMemoryStore(), &fakeClock{now: time.Now()})
		_, err := l.Admit(ctx, "user-1", "nope")
		assert.ErrorIs(t, err, ErrUnknownPolicy)
	})

	t.Run("store failure admits", func(t *testing.T) {
		l := newTestLimiter(failingStore{}, &fakeClock{now: time.Now()})
		d, err := l.Admit(ctx, "user-1", port.PolicyAPI)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 20, d.Remaining)
	})

	t.Run("concurrent access never exceeds the limit", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		l := NewLimiter(NewMemoryStore(), []Policy{{Name: "burst", Limit: 100, Window: time.Minute}}, logger, WithClock(clock.Now))

		var (
			wg      sync.WaitGroup
			allowed atomic.Int64
		)
		for i := 0; i < 150; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				d, err := l.Admit(ctx, "user-1", "burst")
				if err == nil && d.Allowed {
					allowed.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(100), allowed.Load())
	})
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Unix(1_700_000_000, 0)

	_, _, _ = s.Hit(ctx, "short", time.Second, now)
	_, _, _ = s.Hit(ctx, "long", time.Hour, now)
	require.Equal(t, 2, s.Len())

	removed, err := s.Sweep(ctx, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, s.Len())

	count, _, _ := s.Hit(ctx, "long", time.Hour, now.Add(time.Minute))
	assert.Equal(t, 2, count)
}

func TestLimiterRunStopsOnCancel(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := NewMemoryStore()
	l := NewLimiter(store, PoliciesFromConfig(configs.RateLimit{}), logger,
		WithClock(clock.Now), WithSweepInterval(5*time.Millisecond))

	_, _ = l.Admit(context.Background(), "user-1", port.PolicyAPI)
	clock.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}

type failingStore struct{}

func (failingStore) Hit(context.Context, string, time.Duration, time.Time) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("connection refused")
}

func (failingStore) Sweep(context.Context, time.Time) (int, error) { return 0, nil }
