package domain

import "strings"

// Status is the canonical campaign state all platform signals are
// normalised into.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusPaused    Status = "PAUSED"
	StatusArchived  Status = "ARCHIVED"
	StatusDraft     Status = "DRAFT"
	StatusPrepaused Status = "PREPAUSED"
)

// Valid reports whether s is one of the five canonical states.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusArchived, StatusDraft, StatusPrepaused:
		return true
	}
	return false
}

// Settable reports whether a user may request s. DRAFT and PREPAUSED are
// only ever produced by the platform.
func (s Status) Settable() bool {
	return s == StatusActive || s == StatusPaused || s == StatusArchived
}

// ParseStatus normalises a user supplied status. The second result is false
// for anything that is not canonical.
func ParseStatus(v string) (Status, bool) {
	s := Status(strings.ToUpper(strings.TrimSpace(v)))
	return s, s.Valid()
}

// MapStatus translates the platform's raw status and effective status into
// a canonical Status. Either signal may be missing. Precedence, highest
// first: preview/draft effective status, pre-pause raw status, active
// effective status, paused, archived. Anything unrecognised maps to
// PAUSED and never to ACTIVE.
func MapStatus(raw, effective *string) Status {
	r, e := normalise(raw), normalise(effective)

	switch {
	case e == "PREVIEW" || e == "DRAFT":
		return StatusDraft
	case r == "PREPAUSED":
		return StatusPrepaused
	case e == "ACTIVE":
		return StatusActive
	case isPaused(e) || isPaused(r):
		return StatusPaused
	case isArchived(e) || isArchived(r):
		return StatusArchived
	default:
		return StatusPaused
	}
}

func normalise(v *string) string {
	if v == nil {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(*v))
}

func isPaused(v string) bool {
	switch v {
	case "PAUSED", "CAMPAIGN_PAUSED", "ADSET_PAUSED":
		return true
	}
	return false
}

func isArchived(v string) bool {
	return v == "ARCHIVED" || v == "DELETED"
}
