package usecase

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"

	"github.com/google/uuid"
)

// AlertUseCase serves the alert inbox.
type AlertUseCase struct {
	alerts port.AlertRepository
}

var _ port.AlertUseCase = (*AlertUseCase)(nil)

func NewAlertUseCase(alerts port.AlertRepository) *AlertUseCase {
	return &AlertUseCase{alerts: alerts}
}

func (u *AlertUseCase) List(ctx context.Context, p domain.Principal, filter port.AlertFilter) (*port.AlertPage, error) {
	filter.Limit, filter.Offset = pageBounds(filter.Limit, filter.Offset)
	alerts, counts, err := u.alerts.ListAlerts(ctx, p.ID, filter)
	if err != nil {
		return nil, err
	}
	return &port.AlertPage{Alerts: alerts, Counts: counts, Limit: filter.Limit, Offset: filter.Offset}, nil
}

func (u *AlertUseCase) MarkRead(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	return u.alerts.MarkAlertRead(ctx, p.ID, id)
}
