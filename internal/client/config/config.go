// Package config loads runtime settings for the SpeakOut client.
//
// Sources are applied in order, later ones winning: built-in defaults, an
// optional JSON file (-c/-config), environment variables (with .env
// support), and finally command-line flags.
package config

// Config holds runtime settings for the SpeakOut CLI.
//
// Fields:
//   - ServerBaseURL: root of the suggestion service's REST API,
//     e.g. "http://localhost:8080/api".
//   - DatabasePath: path of the local metadata database holding the
//     persisted session and device identifier.
//   - LogLevel: minimum level for structured logging ("debug", "info", ...).
type Config struct {
	ServerBaseURL string
	DatabasePath  string
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080/api"
	c.DatabasePath = "speakout.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
