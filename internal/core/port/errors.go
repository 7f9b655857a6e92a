package port

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrNotFound is returned for missing entities and for entities owned
	// by another principal; the two cases are indistinguishable on purpose.
	ErrNotFound = errors.New("not found")

	// ErrNotSynchronized is returned when an operation needs a campaign that
	// already exists on the platform.
	ErrNotSynchronized = errors.New("source not yet synchronized")

	// ErrOwnershipConflict is returned by the store when a platform entity is
	// already mirrored for another principal.
	ErrOwnershipConflict = errors.New("external entity owned by another principal")

	// ErrUpstreamUnavailable covers network failures and timeouts talking to
	// the platform gateway.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamRejected means the platform's own rate limiting fired.
	ErrUpstreamRejected = errors.New("upstream rejected request")

	// ErrUpstreamFailed means the platform answered with an error that is not
	// a rate limit, e.g. an invalid parameter.
	ErrUpstreamFailed = errors.New("upstream returned an error")
)

// UpstreamError describes a failed platform call. Kind is one of the
// ErrUpstream* sentinels; errors.Is matches both Kind and the cause.
type UpstreamError struct {
	Op         string
	Kind       error
	RetryAfter time.Duration
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// AdmissionDeniedError is the retryable error produced when a rate limit
// policy denies a request. It is expected traffic shaping, not a failure.
type AdmissionDeniedError struct {
	Decision Decision
}

func (e *AdmissionDeniedError) Error() string {
	return fmt.Sprintf("rate limit %q exceeded, retry in %ds", e.Decision.Policy, e.Decision.ResetSeconds())
}

// ValidationError reports malformed input caught before any I/O.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError is a shorthand used by the usecases.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// RetryAfter extracts the retry hint carried by admission and upstream
// rejection errors. The second result is false for any other error.
func RetryAfter(err error) (time.Duration, bool) {
	var denied *AdmissionDeniedError
	if errors.As(err, &denied) {
		return denied.Decision.ResetAfter, true
	}
	var up *UpstreamError
	if errors.As(err, &up) && errors.Is(up.Kind, ErrUpstreamRejected) {
		return up.RetryAfter, true
	}
	return 0, false
}

// Seconds rounds d up to whole seconds, the unit clients schedule retries in.
func Seconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}
