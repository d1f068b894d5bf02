package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mzaikin/boardroom/internal/flagx"
	"github.com/mzaikin/boardroom/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15m"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	ReminderWindow      timex.Duration `json:"reminder_window"`
	ReminderInterval    timex.Duration `json:"reminder_interval"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	LocalDBPath         string         `json:"local_db_path"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c/-config flags. When no file is given the function returns without
// touching cfg; read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.ReminderWindow.Duration > 0 {
		cfg.ReminderWindow = time.Duration(jc.ReminderWindow.Duration)
	}
	if jc.ReminderInterval.Duration > 0 {
		cfg.ReminderInterval = time.Duration(jc.ReminderInterval.Duration)
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
}
