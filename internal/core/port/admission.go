package port

import (
	"context"
	"time"
)

// Policy names. Entry points use api, auth, sync and sensitive; outbound
// platform calls use platform.
const (
	PolicyAPI       = "api"
	PolicySync      = "sync"
	PolicyAuth      = "auth"
	PolicySensitive = "sensitive"
	PolicyPlatform  = "platform"
)

// Admitter gates entry points and outbound calls. Key identifies the
// caller, usually a principal id, and policy names a configured
// fixed-window limit.
type Admitter interface {
	Admit(ctx context.Context, key, policy string) (Decision, error)
}

// Decision is the outcome of one admission check.
type Decision struct {
	Policy     string
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

// ResetSeconds is the number of whole seconds until the window resets.
func (d Decision) ResetSeconds() int {
	return Seconds(d.ResetAfter)
}

// Err returns an AdmissionDeniedError for a denied decision and nil
// otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &AdmissionDeniedError{Decision: d}
}
