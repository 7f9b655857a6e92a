package db

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var seedObjectives = []string{"OUTCOME_TRAFFIC", "OUTCOME_SALES", "OUTCOME_LEADS", "OUTCOME_AWARENESS"}

// Seed inserts demo LOCAL campaigns and a welcome alert for ownerID. It
// does nothing when the owner already has campaigns and returns how many
// campaigns were created.
func Seed(ctx context.Context, campaigns port.CampaignRepository, alerts port.Notifier, ownerID string, n int) (int, error) {
	existing, err := campaigns.Count(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()
	for i := 1; i <= n; i++ {
		// 10.00 to 500.00 in whole cents
		daily := decimal.New(int64(1000+r.Intn(49000)), -2)
		status := domain.StatusPaused
		if i%2 == 0 {
			status = domain.StatusActive
		}
		c := &domain.Campaign{
			ID:          uuid.New(),
			OwnerID:     ownerID,
			Origin:      domain.OriginLocal,
			Name:        fmt.Sprintf("Demo campaign %d", i),
			Objective:   seedObjectives[r.Intn(len(seedObjectives))],
			Status:      status,
			DailyBudget: decimal.NewNullDecimal(daily),
			CreatedAt:   now,
			UpdatedAt:   now.Add(time.Duration(i) * time.Second),
		}
		if err = campaigns.Create(ctx, c); err != nil {
			return i - 1, err
		}
	}

	err = alerts.CreateAlert(ctx, &domain.Alert{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Kind:     domain.AlertInfo,
		Priority: domain.PriorityLow,
		Title:    "Demo data ready",
		Message:  fmt.Sprintf("%d local campaigns were created. Publish one to push it to the platform.", n),
	})
	return n, err
}
