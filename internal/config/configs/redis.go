package configs

// Redis holds connection settings for the shared rate-limit counter store.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// KeyPrefix namespaces counter keys so several deployments can share one
	// Redis instance.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"adsync:ratelimit:"`
}
