package config

import "time"

// Config holds runtime settings for the Boardroom CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - ReminderWindow: how far ahead of a meeting's start the reminder fires.
//   - ReminderInterval: how often upcoming meetings are re-evaluated.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - LocalDBPath: path of the local SQLite file holding client-only state.
type Config struct {
	ServerEndpointAddr  string
	ReminderWindow      time.Duration
	ReminderInterval    time.Duration
	OnlineCheckInterval time.Duration
	LocalDBPath         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.ReminderWindow = 15 * time.Minute
	c.ReminderInterval = time.Minute
	c.OnlineCheckInterval = 3 * time.Second
	c.LocalDBPath = "boardroom.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
