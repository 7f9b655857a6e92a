package port

import (
	"adsync/internal/core/domain"
	"context"

	"github.com/google/uuid"
)

// Notifier is the sink for user visible alerts produced by mutations.
type Notifier interface {
	CreateAlert(ctx context.Context, a *domain.Alert) error
}

// AlertRepository extends the sink with the owner scoped inbox queries.
type AlertRepository interface {
	Notifier
	ListAlerts(ctx context.Context, ownerID string, filter AlertFilter) ([]domain.Alert, AlertCounts, error)
	MarkAlertRead(ctx context.Context, ownerID string, id uuid.UUID) error
}

// AlertFilter narrows ListAlerts.
type AlertFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// AlertCounts are returned alongside a page of alerts.
type AlertCounts struct {
	Total  int
	Unread int
}
