package postgres

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AlertRepository implements port.AlertRepository.
type AlertRepository struct {
	pool *pgxpool.Pool
}

var _ port.AlertRepository = (*AlertRepository)(nil)

func NewAlertRepository(pool *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{pool: pool}
}

// CreateAlert inserts a, filling ID and CreatedAt when unset.
func (r *AlertRepository) CreateAlert(ctx context.Context, a *domain.Alert) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO alerts (id, owner_id, kind, priority, title, message, campaign_id, campaign_name, read, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.OwnerID, a.Kind, a.Priority, a.Title, a.Message, a.CampaignID, a.CampaignName, a.Read, a.CreatedAt,
	)
	return err
}

// ListAlerts returns the owner's alerts newest first with inbox counters.
func (r *AlertRepository) ListAlerts(ctx context.Context, ownerID string, filter port.AlertFilter) ([]domain.Alert, port.AlertCounts, error) {
	var counts port.AlertCounts
	err := r.pool.QueryRow(ctx, `
        SELECT count(*), count(*) FILTER (WHERE NOT read)
        FROM alerts WHERE owner_id = $1`, ownerID,
	).Scan(&counts.Total, &counts.Unread)
	if err != nil {
		return nil, counts, err
	}

	var limit *int
	if filter.Limit > 0 {
		limit = &filter.Limit
	}
	rows, err := r.pool.Query(ctx, `
        SELECT id, owner_id, kind, priority, title, message, campaign_id, campaign_name, read, created_at
        FROM alerts
        WHERE owner_id = $1 AND (NOT $2::boolean OR NOT read)
        ORDER BY created_at DESC, id
        LIMIT $3 OFFSET $4`,
		ownerID, filter.UnreadOnly, limit, max(filter.Offset, 0))
	if err != nil {
		return nil, counts, err
	}
	alerts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Alert, error) {
		var a domain.Alert
		err := row.Scan(&a.ID, &a.OwnerID, &a.Kind, &a.Priority, &a.Title, &a.Message,
			&a.CampaignID, &a.CampaignName, &a.Read, &a.CreatedAt)
		return a, err
	})
	return alerts, counts, err
}

// MarkAlertRead flags one owned alert as read.
func (r *AlertRepository) MarkAlertRead(ctx context.Context, ownerID string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE alerts SET read = true WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
