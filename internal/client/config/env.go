package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment, first seeding it
// from a .env file in the working directory when one exists. A missing .env
// is not an error; malformed durations are ignored in favor of the value
// already in cfg.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BOARDROOM_SERVER_ADDR"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv("BOARDROOM_DB_PATH"); v != "" {
		cfg.LocalDBPath = v
	}
	if v := os.Getenv("BOARDROOM_REMINDER_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ReminderWindow = d
		}
	}
	if v := os.Getenv("BOARDROOM_REMINDER_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ReminderInterval = d
		}
	}
	if v := os.Getenv("BOARDROOM_ONLINE_CHECK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
}
