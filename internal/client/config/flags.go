package config

import (
	"flag"
	"os"
	"time"

	"github.com/careerbridge/careerbridge/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend server
//	-t int      request timeout in seconds
//	-f string   path to the local session cache file
//	-i int      cross-context sync poll interval in seconds
//	-verified   require a verified email to reach profile views
//
// The function filters os.Args to only the flags it knows about, via
// flagx.FilterArgs, so it does not trip over flags owned by other packages
// (notably -c/-config handled by the JSON loader).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-f", "-i", "-verified"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend server")
	fs.StringVar(&cfg.CacheFile, "f", cfg.CacheFile, "path to the local session cache file")
	fs.BoolVar(&cfg.RequireVerified, "verified", cfg.RequireVerified, "require verified email for profile views")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	syncSec := fs.Int("i", int(cfg.SyncInterval.Seconds()), "sync poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
	cfg.SyncInterval = time.Duration(*syncSec) * time.Second
}
