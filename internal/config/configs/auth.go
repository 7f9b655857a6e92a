package configs

// Auth configures principal resolution. Requests carry an HS256 bearer
// token whose subject is the principal id. AllowHeader enables the
// X-Principal-Id header for local development and is ignored when a bearer
// token is present.
type Auth struct {
	JWTSecret   string `env:"JWT_SECRET"`
	AllowHeader bool   `env:"ALLOW_HEADER" envDefault:"false"`
}
