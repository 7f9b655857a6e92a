package db

import (
	"adsync/internal/adapter/memory"
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCreatesLocalCampaignsOnce(t *testing.T) {
	ctx := context.Background()
	campaigns := memory.NewCampaignStore()
	alerts := memory.NewAlertStore()

	n, err := Seed(ctx, campaigns, alerts, "alice", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	page, total, err := campaigns.List(ctx, "alice", port.CampaignFilter{})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	for _, c := range page {
		assert.Equal(t, domain.OriginLocal, c.Origin)
		_, ok := c.Upstream()
		assert.False(t, ok)
		assert.True(t, c.DailyBudget.Valid)
	}

	n, err = Seed(ctx, campaigns, alerts, "alice", 5)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, counts, err := alerts.ListAlerts(ctx, "alice", port.AlertFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Total)
}
