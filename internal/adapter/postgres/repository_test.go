package postgres

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"adsync/internal/db"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestPool starts a PostgreSQL container, applies the migrations and
// returns a pool connected to it.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("adsync_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	_, err = db.Migrate(dsn)
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func ptr(s string) *string { return &s }

func TestCampaignRepository(t *testing.T) {
	pool := newTestPool(t)
	repo := NewCampaignRepository(pool)
	ctx := context.Background()

	newSynced := func(owner, name string) *domain.Campaign {
		return &domain.Campaign{
			OwnerID:     owner,
			ExternalID:  ptr("120"),
			Origin:      domain.OriginSynced,
			Name:        name,
			Objective:   "OUTCOME_SALES",
			Status:      domain.StatusActive,
			DailyBudget: decimal.NewNullDecimal(decimal.RequireFromString("50.25")),
			AdSets: []domain.AdSet{{
				ExternalID: ptr("s1"), Name: "Set", Status: domain.StatusActive,
				Ads: []domain.Ad{{ExternalID: ptr("a1"), Name: "Ad", Status: domain.StatusPaused}},
			}},
		}
	}

	t.Run("upsert is idempotent", func(t *testing.T) {
		first := newSynced("alice", "Spring")
		changed, err := repo.UpsertSynced(ctx, first)
		require.NoError(t, err)
		assert.True(t, changed)

		again := newSynced("alice", "Spring")
		changed, err = repo.UpsertSynced(ctx, again)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, first.ID, again.ID)
		assert.True(t, first.UpdatedAt.Equal(again.UpdatedAt))

		got, err := repo.Get(ctx, "alice", first.ID)
		require.NoError(t, err)
		assert.Equal(t, "50.25", got.DailyBudget.Decimal.String())
		assert.False(t, got.LifetimeBudget.Valid)
		require.Len(t, got.AdSets, 1)
		require.Len(t, got.AdSets[0].Ads, 1)
		assert.Equal(t, domain.StatusPaused, got.AdSets[0].Ads[0].Status)
	})

	t.Run("other owner conflicts", func(t *testing.T) {
		_, err := repo.UpsertSynced(ctx, newSynced("bob", "Hijack"))
		assert.ErrorIs(t, err, port.ErrOwnershipConflict)

		n, err := repo.Count(ctx, "bob")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("list and batch update", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Microsecond)
		local := &domain.Campaign{
			ID: uuid.New(), OwnerID: "alice", Origin: domain.OriginLocal,
			Name: "Local_draft", Status: domain.StatusPaused, CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, repo.Create(ctx, local))
		theirs := &domain.Campaign{
			ID: uuid.New(), OwnerID: "bob", Origin: domain.OriginLocal,
			Name: "Bob", Status: domain.StatusActive, CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, repo.Create(ctx, theirs))

		page, total, err := repo.List(ctx, "alice", port.CampaignFilter{Search: "l_d"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, page, 1)
		assert.Equal(t, local.ID, page[0].ID)

		n, err := repo.UpdateStatusBatch(ctx, "alice", []uuid.UUID{local.ID, theirs.ID}, domain.StatusArchived, now)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, total, err = repo.List(ctx, "alice", port.CampaignFilter{})
		require.NoError(t, err)
		assert.Equal(t, 1, total)

		_, total, err = repo.List(ctx, "alice", port.CampaignFilter{Statuses: []domain.Status{domain.StatusArchived}})
		require.NoError(t, err)
		assert.Equal(t, 1, total)

		got, err := repo.MarkSynced(ctx, "alice", local.ID, "900", now)
		require.NoError(t, err)
		assert.Equal(t, domain.OriginSynced, got.Origin)

		_, err = repo.MarkSynced(ctx, "bob", theirs.ID, "900", now)
		assert.ErrorIs(t, err, port.ErrOwnershipConflict)

		_, err = repo.UpdateStatus(ctx, "alice", theirs.ID, domain.StatusPaused, now)
		assert.ErrorIs(t, err, port.ErrNotFound)
	})
}

func TestAlertRepository(t *testing.T) {
	pool := newTestPool(t)
	repo := NewAlertRepository(pool)
	ctx := context.Background()

	a := &domain.Alert{OwnerID: "alice", Kind: domain.AlertSuccess, Priority: domain.PriorityMedium, Title: "Paused"}
	require.NoError(t, repo.CreateAlert(ctx, a))
	require.NoError(t, repo.CreateAlert(ctx, &domain.Alert{OwnerID: "alice", Kind: domain.AlertError, Priority: domain.PriorityHigh, Title: "Failed"}))

	require.NoError(t, repo.MarkAlertRead(ctx, "alice", a.ID))
	assert.ErrorIs(t, repo.MarkAlertRead(ctx, "bob", a.ID), port.ErrNotFound)

	unread, counts, err := repo.ListAlerts(ctx, "alice", port.AlertFilter{UnreadOnly: true})
	require.NoError(t, err)
	assert.Equal(t, port.AlertCounts{Total: 2, Unread: 1}, counts)
	require.Len(t, unread, 1)
	assert.Equal(t, "Failed", unread[0].Title)
}
