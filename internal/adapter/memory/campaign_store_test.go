package memory

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func synced(owner, ext, name string, status domain.Status) *domain.Campaign {
	return &domain.Campaign{
		OwnerID:     owner,
		ExternalID:  ptr(ext),
		Origin:      domain.OriginSynced,
		Name:        name,
		Status:      status,
		DailyBudget: decimal.NewNullDecimal(decimal.RequireFromString("50.00")),
	}
}

func TestUpsertSyncedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewCampaignStore()
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	c := synced("alice", "120", "Spring", domain.StatusActive)
	changed, err := s.UpsertSynced(ctx, c)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NotEqual(t, uuid.Nil, c.ID)
	firstID := c.ID

	clock = clock.Add(time.Hour)
	again := synced("alice", "120", "Spring", domain.StatusActive)
	// 50 and 50.00 are the same budget.
	again.DailyBudget = decimal.NewNullDecimal(decimal.NewFromInt(50))
	changed, err = s.UpsertSynced(ctx, again)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, firstID, again.ID)
	assert.Equal(t, clock.Add(-time.Hour), again.UpdatedAt)

	n, err := s.Count(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	renamed := synced("alice", "120", "Summer", domain.StatusActive)
	changed, err = s.UpsertSynced(ctx, renamed)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, clock, renamed.UpdatedAt)
	assert.Equal(t, firstID, renamed.ID)
}

func TestUpsertSyncedOwnershipConflict(t *testing.T) {
	ctx := context.Background()
	s := NewCampaignStore()

	_, err := s.UpsertSynced(ctx, synced("alice", "120", "Spring", domain.StatusActive))
	require.NoError(t, err)

	_, err = s.UpsertSynced(ctx, synced("bob", "120", "Hijack", domain.StatusPaused))
	assert.ErrorIs(t, err, port.ErrOwnershipConflict)

	page, total, err := s.List(ctx, "alice", port.CampaignFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, "Spring", page[0].Name)
}

func TestUpsertSyncedMergesChildren(t *testing.T) {
	ctx := context.Background()
	s := NewCampaignStore()

	c := synced("alice", "120", "Spring", domain.StatusActive)
	c.AdSets = []domain.AdSet{{
		ExternalID: ptr("s1"), Name: "Set", Status: domain.StatusActive,
		Ads: []domain.Ad{{ExternalID: ptr("a1"), Name: "Ad", Status: domain.StatusActive}},
	}}
	_, err := s.UpsertSynced(ctx, c)
	require.NoError(t, err)

	// A list payload without children keeps them.
	changed, err := s.UpsertSynced(ctx, synced("alice", "120", "Spring", domain.StatusActive))
	require.NoError(t, err)
	assert.False(t, changed)

	next := synced("alice", "120", "Spring", domain.StatusActive)
	next.AdSets = []domain.AdSet{{
		ExternalID: ptr("s1"), Name: "Set", Status: domain.StatusActive,
		Ads: []domain.Ad{
			{ExternalID: ptr("a1"), Name: "Ad", Status: domain.StatusPaused},
			{ExternalID: ptr("a2"), Name: "Ad 2", Status: domain.StatusActive},
		},
	}}
	changed, err = s.UpsertSynced(ctx, next)
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := s.Get(ctx, "alice", c.ID)
	require.NoError(t, err)
	require.Len(t, got.AdSets, 1)
	require.Len(t, got.AdSets[0].Ads, 2)
	assert.Equal(t, domain.StatusPaused, got.AdSets[0].Ads[0].Status)
	assert.Equal(t, got.AdSets[0].ID, got.AdSets[0].Ads[1].AdSetID)
}

func TestGetIsOwnerScoped(t *testing.T) {
	ctx := context.Background()
	s := NewCampaignStore()
	c := synced("alice", "120", "Spring", domain.StatusActive)
	_, err := s.UpsertSynced(ctx, c)
	require.NoError(t, err)

	_, err = s.Get(ctx, "bob", c.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)

	_, err = s.UpdateStatus(ctx, "bob", c.ID, domain.StatusPaused, time.Now())
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestListFiltersAndPages(t *testing.T) {
	ctx := context.Background()
	s := NewCampaignStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, st := range []domain.Status{domain.StatusActive, domain.StatusPaused, domain.StatusArchived, domain.StatusActive} {
		c := &domain.Campaign{
			ID: uuid.New(), OwnerID: "alice", Origin: domain.OriginLocal,
			Name: []string{"Alpha", "Beta", "Gamma", "alphabet"}[i], Status: st,
			CreatedAt: base, UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, s.Create(ctx, c))
	}
	require.NoError(t, s.Create(ctx, &domain.Campaign{ID: uuid.New(), OwnerID: "bob", Name: "Alpha", Status: domain.StatusActive}))

	all, total, err := s.List(ctx, "alice", port.CampaignFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, "alphabet", all[0].Name)

	archived, total, err := s.List(ctx, "alice", port.CampaignFilter{Statuses: []domain.Status{domain.StatusArchived}})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Gamma", archived[0].Name)

	found, total, err := s.List(ctx, "alice", port.CampaignFilter{Search: "ALPHA", Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, found, 1)
	assert.Equal(t, "Alpha", found[0].Name)

	empty, _, err := s.List(ctx, "alice", port.CampaignFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateStatusBatchCountsOnlyOwned(t *testing.T) {
	ctx := context.Background()
	s := NewCampaignStore()
	mine := &domain.Campaign{ID: uuid.New(), OwnerID: "alice", Status: domain.StatusActive}
	theirs := &domain.Campaign{ID: uuid.New(), OwnerID: "bob", Status: domain.StatusActive}
	require.NoError(t, s.Create(ctx, mine))
	require.NoError(t, s.Create(ctx, theirs))

	at := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)
	n, err := s.UpdateStatusBatch(ctx, "alice", []uuid.UUID{mine.ID, theirs.ID, mine.ID, uuid.New()}, domain.StatusPaused, at)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.Get(ctx, "bob", theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)

	got, err = s.Get(ctx, "alice", mine.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, got.Status)
	assert.Equal(t, at, got.UpdatedAt)
}

func TestMarkSynced(t *testing.T) {
	ctx := context.Background()
	s := NewCampaignStore()
	local := &domain.Campaign{ID: uuid.New(), OwnerID: "alice", Origin: domain.OriginLocal, Status: domain.StatusPaused}
	require.NoError(t, s.Create(ctx, local))

	got, err := s.MarkSynced(ctx, "alice", local.ID, "900", time.Now())
	require.NoError(t, err)
	ext, ok := got.Upstream()
	require.True(t, ok)
	assert.Equal(t, "900", ext)

	// The next sync finds the published row by external id.
	in := synced("alice", "900", "", domain.StatusPaused)
	in.DailyBudget = decimal.NullDecimal{}
	_, err = s.UpsertSynced(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, local.ID, in.ID)

	other := &domain.Campaign{ID: uuid.New(), OwnerID: "alice", Origin: domain.OriginLocal}
	require.NoError(t, s.Create(ctx, other))
	_, err = s.MarkSynced(ctx, "alice", other.ID, "900", time.Now())
	assert.ErrorIs(t, err, port.ErrOwnershipConflict)
}

func TestReturnedCampaignsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewCampaignStore()
	c := synced("alice", "120", "Spring", domain.StatusActive)
	_, err := s.UpsertSynced(ctx, c)
	require.NoError(t, err)

	got, err := s.Get(ctx, "alice", c.ID)
	require.NoError(t, err)
	got.Name = "mutated"
	*got.ExternalID = "999"

	again, err := s.Get(ctx, "alice", c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spring", again.Name)
	assert.Equal(t, "120", *again.ExternalID)
}
