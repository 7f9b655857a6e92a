package configs

import "time"

// Platform configures the HTTP client talking to the external advertising
// platform gateway. Every call carries its own timeout.
type Platform struct {
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8000"`
	AccessToken string `env:"ACCESS_TOKEN"`
	// AccountID identifies the connected ad account and keys the outbound
	// admission policy.
	AccountID string `env:"ACCOUNT_ID" envDefault:"default"`

	ListTimeout      time.Duration `env:"LIST_TIMEOUT" envDefault:"10s"`
	StatusTimeout    time.Duration `env:"STATUS_TIMEOUT" envDefault:"10s"`
	DuplicateTimeout time.Duration `env:"DUPLICATE_TIMEOUT" envDefault:"15s"`
	DetailsTimeout   time.Duration `env:"DETAILS_TIMEOUT" envDefault:"10s"`
	CreateTimeout    time.Duration `env:"CREATE_TIMEOUT" envDefault:"30s"`

	// RejectedBackoff is the retry hint returned when the platform's own
	// rate limiting fires.
	RejectedBackoff time.Duration `env:"REJECTED_BACKOFF" envDefault:"120s"`
}
