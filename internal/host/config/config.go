// Package config handles configuration for the host process, including
// defaults, .env/environment overlay, JSON file overlay, and command-line
// flags.
package config

import (
	"os"
	"time"

	"github.com/avolkovs/vitrina/internal/common"
	"github.com/joho/godotenv"
)

// fallbackSecret signs tokens when no NEXTAUTH_SECRET is configured.
// Deliberately weak; allowed only outside production — Validate enforces
// that.
const fallbackSecret = "your-fallback-secret-key"

// Config holds runtime settings for the host.
//
// Fields:
//   - Environment: deployment mode, "development" or "production" (NODE_ENV).
//   - EndpointAddrAPI: bind address of the public auth API.
//   - EndpointAddrBridge: bind address of the privileged bridge; keep it
//     on loopback.
//   - DatabaseDSN: Postgres DSN or a "file:" SQLite path (DATABASE_URL).
//   - SecretKey: HMAC secret for signing session tokens (NEXTAUTH_SECRET).
//   - TokenValidity: session token lifetime.
type Config struct {
	Environment        string
	EndpointAddrAPI    string
	EndpointAddrBridge string
	DatabaseDSN        string
	SecretKey          string
	TokenValidity      time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: these values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Environment = "development"
	c.EndpointAddrAPI = ":3000"
	c.EndpointAddrBridge = "127.0.0.1:47831"
	c.DatabaseDSN = "file:./vitrina.db"
	c.SecretKey = ""
	c.TokenValidity = 7 * 24 * time.Hour
}

// parseEnv overlays values from the process environment. In development a
// .env file is loaded first, if present.
func parseEnv(c *Config) {
	if c.Environment != "production" {
		_ = godotenv.Load()
	}

	c.Environment = getEnv("NODE_ENV", c.Environment)
	c.DatabaseDSN = getEnv("DATABASE_URL", c.DatabaseDSN)
	c.SecretKey = getEnv("NEXTAUTH_SECRET", c.SecretKey)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Validate applies the secret policy: a missing secret falls back to a
// fixed development literal, but in production the host refuses to start
// instead of signing sessions with a known key.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		if c.Environment == "production" {
			return common.ErrNoSecret
		}
		c.SecretKey = fallbackSecret
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file, and finally command-line
// flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
