package configs

// Store selects the persisted store implementation. "postgres" is the
// production store; "memory" keeps everything in process and is meant for
// local development.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// UseMemory reports whether the in-process store was requested.
func (s Store) UseMemory() bool {
	return s.Driver == "memory"
}
