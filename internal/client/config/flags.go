package config

import (
	"flag"
	"os"
	"time"

	"custdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the REST backend (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-d string   credentials database path (default from Config)
//	-e          ephemeral mode, in-memory credentials only
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the REST backend")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.CredentialsPath, "d", cfg.CredentialsPath, "credentials database path")
	fs.BoolVar(&cfg.Ephemeral, "e", cfg.Ephemeral, "keep credentials in memory only")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
