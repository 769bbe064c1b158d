package config

// Config holds runtime settings for the CLI client.
//
// Fields:
//   - APIEndpointAddr: base URL of the host auth API.
//   - BridgeEndpointAddr: base URL of the privileged bridge; empty means
//     the client runs without a bridge (browser-like mode).
//   - LocalDBPath: SQLite DSN of the plain credential fallback store.
//   - UseSecureStorage: whether to route credentials through the host's
//     encrypted storage when a bridge is configured.
type Config struct {
	APIEndpointAddr    string
	BridgeEndpointAddr string
	LocalDBPath        string
	UseSecureStorage   bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpointAddr = "http://127.0.0.1:3000"
	c.BridgeEndpointAddr = "http://127.0.0.1:47831"
	c.LocalDBPath = "file:vitrina-cli.db"
	c.UseSecureStorage = true
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
