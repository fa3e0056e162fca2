// Package config handles configuration for the client CLI,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the AdminGate client.
//
// Fields:
//   - ServerURL: base URL of the backend HTTP API.
//   - StateFile: path of the persisted auth record (JSON).
type Config struct {
	ServerURL string
	StateFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.StateFile = "auth-storage.json"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
