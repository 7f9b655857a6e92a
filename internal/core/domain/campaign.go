package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Origin records whether a campaign exists on the advertising platform.
// LOCAL campaigns were created here and never reached the platform, SYNCED
// campaigns mirror a platform entity identified by ExternalID.
type Origin string

const (
	OriginLocal  Origin = "LOCAL"
	OriginSynced Origin = "SYNCED"
)

// Valid reports whether o is a known origin.
func (o Origin) Valid() bool {
	return o == OriginLocal || o == OriginSynced
}

// Campaign represents an advertising campaign mirrored from the platform.
// Budgets are kept in major currency units; the platform speaks minor
// units and the conversion happens at the gateway boundary.
type Campaign struct {
	ID             uuid.UUID
	OwnerID        string
	ExternalID     *string // natural key, unique when set
	Origin         Origin
	Name           string
	Objective      string
	Status         Status
	DailyBudget    decimal.NullDecimal
	LifetimeBudget decimal.NullDecimal
	CreatedAt      time.Time
	UpdatedAt      time.Time

	AdSets []AdSet
}

// Upstream returns the platform id of the campaign when it mirrors a
// platform entity. Local campaigns report false even if an id was set.
func (c *Campaign) Upstream() (string, bool) {
	if c.Origin != OriginSynced || c.ExternalID == nil || *c.ExternalID == "" {
		return "", false
	}
	return *c.ExternalID, true
}

// AdSet groups ads under a campaign. Same status and budget rules as
// Campaign.
type AdSet struct {
	ID          uuid.UUID
	CampaignID  uuid.UUID
	ExternalID  *string
	Name        string
	Status      Status
	DailyBudget decimal.NullDecimal
	UpdatedAt   time.Time

	Ads []Ad
}

// Ad is the leaf of the campaign tree.
type Ad struct {
	ID         uuid.UUID
	AdSetID    uuid.UUID
	ExternalID *string
	Name       string
	Status     Status
	UpdatedAt  time.Time
}
