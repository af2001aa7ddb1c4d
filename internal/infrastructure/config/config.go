// Package config loads runtime settings from the environment.
package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// DefaultSessionSecret signs session cookies when SESSION_SECRET is unset.
// It is fine for local development and nothing else; main warns loudly when
// the service falls back to it.
const DefaultSessionSecret = "dev-only-insecure-secret"

type Config struct {
	Port     string `env:"PORT,       default=3000"`
	Env      string `env:"ENV,        default=development"`
	LogLevel string `env:"LOG_LEVEL,  default=info"`

	// SessionSecret signs the session cookie. Must be set in production.
	SessionSecret string `env:"SESSION_SECRET, default=dev-only-insecure-secret"`

	// BcryptCost is the adaptive hashing work factor for new passwords.
	BcryptCost int `env:"BCRYPT_COST, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Development reports whether the service runs in development mode.
func (c *Config) Development() bool {
	return c.Env == "development"
}
