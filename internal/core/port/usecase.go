package port

import (
	"adsync/internal/core/domain"
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SyncUseCase mirrors the platform's campaigns into the local store.
type SyncUseCase interface {
	// SyncAll pulls every campaign of the connected account and upserts it.
	// Per campaign failures are collected in the result; only admission
	// denial and a failed list call abort the whole run.
	SyncAll(ctx context.Context, p domain.Principal) (*SyncResult, error)
}

// CampaignUseCase holds the user initiated operations on one campaign.
// Status changes and duplication reach the platform before being trusted
// locally; reads only touch the store.
type CampaignUseCase interface {
	// SetStatus changes the status on the platform when the campaign is
	// synced, then updates it locally regardless of the platform outcome.
	SetStatus(ctx context.Context, p domain.Principal, id uuid.UUID, status domain.Status) (*domain.Campaign, error)

	// Duplicate creates copies of a synced campaign on the platform and
	// mirrors each successful copy. Failed copies do not stop the others.
	Duplicate(ctx context.Context, p domain.Principal, id uuid.UUID, copies int) (*DuplicateResult, error)

	// Create creates a campaign on the platform and stores it. When the
	// platform call fails the campaign is kept as LOCAL.
	Create(ctx context.Context, p domain.Principal, in CreateCampaignInput) (*domain.Campaign, error)

	// Publish pushes a LOCAL campaign to the platform.
	Publish(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Campaign, error)

	Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Campaign, error)
	List(ctx context.Context, p domain.Principal, filter CampaignFilter) (*CampaignPage, error)
}

// BulkUseCase applies one status to many campaigns without calling the
// platform; the next sync or per campaign SetStatus converges upstream.
type BulkUseCase interface {
	ApplyBulk(ctx context.Context, p domain.Principal, ids []uuid.UUID, action domain.Status) (*BulkResult, error)
}

// AlertUseCase serves the alert inbox.
type AlertUseCase interface {
	List(ctx context.Context, p domain.Principal, filter AlertFilter) (*AlertPage, error)
	MarkRead(ctx context.Context, p domain.Principal, id uuid.UUID) error
}

// SyncResult summarises one SyncAll run. Errors is truncated for display.
type SyncResult struct {
	Synced    int
	Total     int
	Changed   int
	Errors    []string
	Admission Decision
}

// DuplicateResult is the partial-failure shape of Duplicate.
type DuplicateResult struct {
	CreatedCount int
	Campaigns    []domain.Campaign
	Errors       []string
}

// BulkResult reports how many campaigns a bulk action touched.
type BulkResult struct {
	UpdatedCount int
	Action       domain.Status
}

// CreateCampaignInput carries a new campaign in major currency units.
type CreateCampaignInput struct {
	Name           string
	Objective      string
	Status         domain.Status
	DailyBudget    decimal.NullDecimal
	LifetimeBudget decimal.NullDecimal
}

// CampaignPage is one page of List.
type CampaignPage struct {
	Campaigns []domain.Campaign
	Total     int
	Limit     int
	Offset    int
}

// AlertPage is one page of the alert inbox.
type AlertPage struct {
	Alerts []domain.Alert
	Counts AlertCounts
	Limit  int
	Offset int
}
