package usecase

import (
	"adsync/internal/adapter/memory"
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	alice = domain.Principal{ID: "alice", Source: "test"}
	bob   = domain.Principal{ID: "bob", Source: "test"}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr(s string) *string { return &s }

func allowed(policy string) port.Decision {
	return port.Decision{Policy: policy, Allowed: true, Limit: 10, Remaining: 9, ResetAfter: time.Minute}
}

func denied(policy string) port.Decision {
	return port.Decision{Policy: policy, Limit: 10, ResetAfter: 42 * time.Second}
}

// seed stores a campaign for owner. An empty externalID makes it LOCAL.
func seed(t *testing.T, store *memory.CampaignStore, owner, externalID, name string) *domain.Campaign {
	t.Helper()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &domain.Campaign{
		ID:          uuid.New(),
		OwnerID:     owner,
		Origin:      domain.OriginLocal,
		Name:        name,
		Objective:   "OUTCOME_SALES",
		Status:      domain.StatusActive,
		DailyBudget: decimal.NewNullDecimal(decimal.RequireFromString("25.50")),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if externalID != "" {
		c.ExternalID = ptr(externalID)
		c.Origin = domain.OriginSynced
	}
	require.NoError(t, store.Create(context.Background(), c))
	return c
}

func alertsOf(t *testing.T, store *memory.AlertStore, owner string) []domain.Alert {
	t.Helper()
	alerts, _, err := store.ListAlerts(context.Background(), owner, port.AlertFilter{})
	require.NoError(t, err)
	return alerts
}
