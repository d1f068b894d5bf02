package config

import (
	"flag"
	"os"
	"time"

	"github.com/mzaikin/boardroom/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server (default from Config)
//	-d string   local SQLite database path (default from Config)
//	-i int      reminder re-evaluation interval in seconds (default from Config)
//	-w int      reminder lead window in minutes (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.LocalDBPath, "d", cfg.LocalDBPath, "local SQLite database path")
	reminderInterval := fs.Int("i", int(cfg.ReminderInterval.Seconds()), "reminder re-evaluation interval (in seconds)")
	reminderWindow := fs.Int("w", int(cfg.ReminderWindow.Minutes()), "reminder lead window (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ReminderInterval = time.Duration(*reminderInterval) * time.Second
	cfg.ReminderWindow = time.Duration(*reminderWindow) * time.Minute
}
