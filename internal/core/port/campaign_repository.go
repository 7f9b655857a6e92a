package port

import (
	"adsync/internal/core/domain"
	"context"
	"time"

	"github.com/google/uuid"
)

// CampaignRepository defines the persisted store for campaigns. It is an
// outbound port. Every method except UpsertSynced is scoped by owner; rows
// of other owners behave as if they did not exist.
type CampaignRepository interface {
	// UpsertSynced inserts or updates a SYNCED campaign keyed by its
	// ExternalID together with any ad sets and ads attached to it. Mirrored
	// fields are only written, and UpdatedAt only bumped, when they differ
	// from the stored row. On return c holds the stored ID and timestamps;
	// the bool reports whether anything changed. ErrOwnershipConflict is
	// returned when the external id belongs to another owner.
	UpsertSynced(ctx context.Context, c *domain.Campaign) (bool, error)

	// Create stores a new campaign. ID and timestamps must be set by the
	// caller.
	Create(ctx context.Context, c *domain.Campaign) error

	// Get returns one campaign with its ad sets and ads.
	Get(ctx context.Context, ownerID string, id uuid.UUID) (*domain.Campaign, error)

	// List returns one page of campaigns and the total matching count.
	List(ctx context.Context, ownerID string, filter CampaignFilter) ([]domain.Campaign, int, error)

	// UpdateStatus sets status and UpdatedAt atomically.
	UpdateStatus(ctx context.Context, ownerID string, id uuid.UUID, status domain.Status, at time.Time) (*domain.Campaign, error)

	// UpdateStatusBatch applies status to every campaign in ids owned by
	// ownerID in one statement and returns how many rows were updated.
	UpdateStatusBatch(ctx context.Context, ownerID string, ids []uuid.UUID, status domain.Status, at time.Time) (int, error)

	// MarkSynced attaches a platform id to a LOCAL campaign and flips its
	// origin to SYNCED.
	MarkSynced(ctx context.Context, ownerID string, id uuid.UUID, externalID string, at time.Time) (*domain.Campaign, error)

	// Count returns how many campaigns the owner has in total.
	Count(ctx context.Context, ownerID string) (int, error)
}

// CampaignFilter narrows List. An empty Statuses slice excludes ARCHIVED
// campaigns, matching what the dashboard shows by default.
type CampaignFilter struct {
	Statuses []domain.Status
	Search   string
	Limit    int
	Offset   int
}
