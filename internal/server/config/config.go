// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the AdminGate server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty means the in-memory user store.
//   - SecretKey: HMAC secret for signing bearer tokens (HS256).
//   - SessionValidityDuration: lifetime of a server session and its cookie.
//   - CookieName: name of the session cookie.
//   - MockAuth: when true, credentials are checked against MockSharedSecret
//     instead of the user store.
//   - MockSharedSecret: the password accepted by the mock verifier.
//   - AdminEmail: the account granted the admin role (mock mode) and the
//     seeded admin login (store mode).
//   - AdminPassword: initial password for the seeded admin account.
type Config struct {
	EndpointAddr            string
	DatabaseDSN             string
	SecretKey               string
	SessionValidityDuration time.Duration
	CookieName              string
	MockAuth                bool
	MockSharedSecret        string
	AdminEmail              string
	AdminPassword           string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 7 * 24 * time.Hour
	c.CookieName = "session-id"
	c.MockAuth = true
	c.MockSharedSecret = "password123"
	c.AdminEmail = "admin@example.com"
	c.AdminPassword = "admin123"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
