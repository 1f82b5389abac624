// Package config handles configuration for the server component: defaults,
// an optional JSON file, environment variables and command-line flags, applied
// in that order.
package config

import (
	"os"
	"time"
)

// DefaultSecretKey is the development signing secret. The server refuses to
// use it together with a persistent database.
const DefaultSecretKey = "secretKey"

// Config holds runtime settings for the bookmarks server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the REST API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing access tokens (HS256).
//   - RedisAddr: Redis address for auth rate limiting. Empty disables it.
//   - TrustProxy: take the client address from X-Forwarded-For/X-Real-IP.
//   - OTLPEndpoint / OTLPInsecure: trace exporter target. Empty disables tracing.
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: grace period for in-flight requests on SIGINT/SIGTERM.
type Config struct {
	EndpointAddrHTTP string
	DatabaseDSN      string
	SecretKey        string
	RedisAddr        string
	TrustProxy       bool
	OTLPEndpoint     string
	OTLPInsecure     bool
	LogLevel         string
	ShutdownTimeout  time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":4000"
	c.DatabaseDSN = ""
	c.SecretKey = DefaultSecretKey
	c.RedisAddr = ""
	c.TrustProxy = false
	c.OTLPEndpoint = ""
	c.OTLPInsecure = true
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
}

// HasDefaultSecret reports whether tokens would be signed with DefaultSecretKey.
func (c *Config) HasDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

// LoadConfig builds a Config from the process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.Getenv)
}

// Load applies defaults, then the JSON file named by -c/-config, then the
// environment read through getenv, then flags from args.
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, getenv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	return cfg, nil
}
