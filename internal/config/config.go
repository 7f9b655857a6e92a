package config

import (
	"adsync/internal/config/configs"

	"github.com/caarlos0/env/v11"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Store selects the persisted store backing campaigns and alerts.
	Store configs.Store `envPrefix:"STORE_"`

	// Psql configures the PostgreSQL connection.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the shared counter store used by the rate limiter
	// when RATELIMIT_BACKEND=redis.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// RateLimit holds the admission policies.
	RateLimit configs.RateLimit `envPrefix:"RATELIMIT_"`

	// Platform configures the client for the external advertising platform
	// gateway.
	Platform configs.Platform `envPrefix:"PLATFORM_"`

	// Auth configures how the request principal is resolved.
	Auth configs.Auth `envPrefix:"AUTH_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
