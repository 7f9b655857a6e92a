package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertKind classifies an alert for display.
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertWarning AlertKind = "warning"
	AlertError   AlertKind = "error"
	AlertInfo    AlertKind = "info"
)

// AlertPriority orders alerts in the inbox.
type AlertPriority string

const (
	PriorityLow    AlertPriority = "low"
	PriorityMedium AlertPriority = "medium"
	PriorityHigh   AlertPriority = "high"
)

// Alert is a user visible notification produced by mutations. CampaignID is
// a weak reference: the campaign may disappear later and the alert stays.
type Alert struct {
	ID           uuid.UUID
	OwnerID      string
	Kind         AlertKind
	Priority     AlertPriority
	Title        string
	Message      string
	CampaignID   *uuid.UUID
	CampaignName string
	Read         bool
	CreatedAt    time.Time
}
