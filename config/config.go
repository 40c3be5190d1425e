package config

import (
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/jsisencao/portal-juridico/internal/storage"
)

// Config is decoded from the TOML configuration file.
type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Auth struct {
		// JWTSecret signs admin session tokens. Required.
		JWTSecret string
		// TokenTTLMinutes bounds the admin session lifetime. 0 means 24h.
		TokenTTLMinutes int
	}
	Storage storage.Config
}

const defaultTokenTTL = 24 * time.Hour

// TokenTTL returns the configured admin token lifetime.
func (c *Config) TokenTTL() time.Duration {
	if c.Auth.TokenTTLMinutes <= 0 {
		return defaultTokenTTL
	}
	return time.Duration(c.Auth.TokenTTLMinutes) * time.Minute
}
