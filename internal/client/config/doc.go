// Package config loads runtime configuration for the Boardroom CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-d string   path of the local SQLite database file
//	-i int      reminder re-evaluation interval (seconds)
//	-w int      reminder lead window (minutes)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "1m" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "reminder_window": "15m",
//	  "reminder_interval": "1m",
//	  "local_db_path": "boardroom.db"
//	}
//
// Environment variables
//
//	BOARDROOM_SERVER_ADDR        backend endpoint
//	BOARDROOM_DB_PATH            local SQLite path
//	BOARDROOM_REMINDER_WINDOW    duration string, e.g. "15m"
//	BOARDROOM_REMINDER_INTERVAL  duration string, e.g. "1m"
package config
