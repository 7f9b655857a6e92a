package port

import (
	"adsync/internal/core/domain"
	"context"
	"encoding/json"
)

// PlatformGateway is the outbound port to the external advertising
// platform. Implementations bound every call with a timeout and fail with an
// *UpstreamError whose Kind tells unavailability from rejection.
type PlatformGateway interface {
	ListCampaigns(ctx context.Context, includeDrafts bool) ([]ExternalCampaign, error)
	GetCampaign(ctx context.Context, externalID string) (*ExternalCampaign, error)
	SetStatus(ctx context.Context, externalID string, status domain.Status) error
	Duplicate(ctx context.Context, externalID, nameSuffix string) (string, error)
	CreateCampaign(ctx context.Context, in ExternalCampaignInput) (string, error)
}

// ExternalCampaign is a campaign as reported by the platform. The platform
// payload is loosely typed, so every field other than ID is optional and
// budgets are kept as the raw JSON value in minor currency units.
type ExternalCampaign struct {
	ID              string
	Name            *string
	Objective       *string
	Status          *string
	EffectiveStatus *string
	DailyBudget     json.RawMessage
	LifetimeBudget  json.RawMessage
	AdSets          []ExternalAdSet
}

// ExternalAdSet is an ad set nested in an ExternalCampaign.
type ExternalAdSet struct {
	ID              string
	Name            *string
	Status          *string
	EffectiveStatus *string
	DailyBudget     json.RawMessage
	Ads             []ExternalAd
}

// ExternalAd is an ad nested in an ExternalAdSet.
type ExternalAd struct {
	ID              string
	Name            *string
	Status          *string
	EffectiveStatus *string
}

// ExternalCampaignInput creates a campaign on the platform. Budgets are in
// minor units.
type ExternalCampaignInput struct {
	Name           string
	Objective      string
	Status         domain.Status
	DailyBudget    *int64
	LifetimeBudget *int64
}
