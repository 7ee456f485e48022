package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Server holds server process configuration, parsed from the environment.
type Server struct {
	Host string `env:"TALLY_HOST" envDefault:""`
	Port int    `env:"TALLY_PORT" envDefault:"8080"`

	// StorageType selects the ledger backend: "memory" or "redis".
	StorageType string `env:"TALLY_STORAGE" envDefault:"memory"`
	// RedisURL is required when StorageType is "redis".
	RedisURL string `env:"TALLY_REDIS_URL"`

	// WriteTokenHash is the bcrypt hash of the shared write token. Empty
	// leaves mutating routes open (local use).
	WriteTokenHash string `env:"TALLY_WRITE_TOKEN_HASH"`

	// MetricsEnabled controls the /metrics endpoint.
	MetricsEnabled bool `env:"TALLY_METRICS" envDefault:"true"`
}

// Load reads a .env file if present, then parses the environment.
func Load() (*Server, error) {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
