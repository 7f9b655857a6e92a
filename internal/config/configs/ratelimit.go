package configs

import "time"

// RateLimit configures the admission controller. Each named policy is a
// fixed-window counter. Backend selects where counters live: "memory" keeps
// them in process and loses them on restart, "redis" shares them between
// instances.
type RateLimit struct {
	Backend       string        `env:"BACKEND" envDefault:"memory"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`

	API       Window `envPrefix:"API_"`
	Sync      Window `envPrefix:"SYNC_"`
	Auth      Window `envPrefix:"AUTH_"`
	Sensitive Window `envPrefix:"SENSITIVE_"`
	Platform  Window `envPrefix:"PLATFORM_"`
}

// Window is the limit/length pair of one policy. Zero values are replaced
// with the policy default by RateLimit.Windows.
type Window struct {
	Limit  int           `env:"LIMIT"`
	Length time.Duration `env:"WINDOW"`
}

// Windows returns every policy keyed by name with defaults applied.
func (c RateLimit) Windows() map[string]Window {
	return map[string]Window{
		"api":       c.API.orDefault(20, time.Minute),
		"sync":      c.Sync.orDefault(10, 5*time.Minute),
		"auth":      c.Auth.orDefault(5, time.Minute),
		"sensitive": c.Sensitive.orDefault(3, time.Hour),
		"platform":  c.Platform.orDefault(60, time.Minute),
	}
}

func (w Window) orDefault(limit int, length time.Duration) Window {
	if w.Limit <= 0 {
		w.Limit = limit
	}
	if w.Length <= 0 {
		w.Length = length
	}
	return w
}
