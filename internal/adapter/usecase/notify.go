package usecase

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// notify records an alert for the campaign owner. A failing sink is logged
// and never fails the operation that produced the alert.
func notify(ctx context.Context, n port.Notifier, logger *slog.Logger, c *domain.Campaign, kind domain.AlertKind, priority domain.AlertPriority, title, message string) {
	a := &domain.Alert{
		ID:       uuid.New(),
		OwnerID:  c.OwnerID,
		Kind:     kind,
		Priority: priority,
		Title:    title,
		Message:  message,
	}
	if c.ID != uuid.Nil {
		id := c.ID
		a.CampaignID = &id
		a.CampaignName = c.Name
	}
	if err := n.CreateAlert(ctx, a); err != nil {
		logger.Error("failed to create alert",
			slog.String("owner", c.OwnerID),
			slog.String("title", title),
			slog.Any("error", err))
	}
}
