package config

import (
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/logging"
)

// Config holds runtime settings for the recipeshare client.
//
// Fields:
//   - ServerURL: base URL of the recipe backend (scheme://host:port).
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - RequestTimeout: per-request HTTP timeout.
//   - MessageTTL: how long a banner message stays visible.
//   - DatabasePath: sqlite file holding the session and the recipe snapshot.
//   - LogLevel / LogFormat: see logging.New.
type Config struct {
	ServerURL           string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	MessageTTL          time.Duration
	DatabasePath        string
	LogLevel            string
	LogFormat           logging.Format
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.MessageTTL = 5 * time.Second
	c.DatabasePath = "recipeshare.db"
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if one is named) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
