package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/flagx"
)

// configFlags are the flags owned by the config loader; anything else on the
// command line belongs to cobra.
var configFlags = []string{"-a", "-i", "-t", "-d", "-l"}

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base URL of the recipe backend
//	-i int      online check interval in seconds
//	-t int      request timeout in seconds
//	-d string   path of the local sqlite database
//	-l string   log level (debug, info, warn, error)
//
// Parse errors panic; LoadConfig is called once at startup.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], configFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the recipe backend")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Durations from a config file may be sub-second; keep them unless the
	// flag was given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
}
