package usecase

import (
	"adsync/internal/core/domain"
	"adsync/internal/core/port"
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// MaxBulkIDs bounds one bulk request.
const MaxBulkIDs = 500

// BulkUseCase applies one status to many campaigns in a single store
// update. It never calls the platform; the next sync or a per campaign
// SetStatus converges upstream.
type BulkUseCase struct {
	campaigns port.CampaignRepository
	logger    *slog.Logger
	now       func() time.Time
}

var _ port.BulkUseCase = (*BulkUseCase)(nil)

func NewBulkUseCase(campaigns port.CampaignRepository, logger *slog.Logger) *BulkUseCase {
	return &BulkUseCase{
		campaigns: campaigns,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ApplyBulk implements port.BulkUseCase. Ids of other owners are skipped
// silently and excluded from the count.
func (u *BulkUseCase) ApplyBulk(ctx context.Context, p domain.Principal, ids []uuid.UUID, action domain.Status) (*port.BulkResult, error) {
	if !action.Settable() {
		return nil, port.NewValidationError("action", "must be one of ACTIVE, PAUSED, ARCHIVED")
	}
	if len(ids) == 0 {
		return nil, port.NewValidationError("campaignIds", "at least one id is required")
	}
	if len(ids) > MaxBulkIDs {
		return nil, port.NewValidationError("campaignIds", "too many ids")
	}

	n, err := u.campaigns.UpdateStatusBatch(ctx, p.ID, ids, action, u.now())
	if err != nil {
		return nil, err
	}
	u.logger.Info("bulk status applied",
		slog.String("principal", p.ID),
		slog.String("action", string(action)),
		slog.Int("requested", len(ids)),
		slog.Int("updated", n))
	return &port.BulkResult{UpdatedCount: n, Action: action}, nil
}
