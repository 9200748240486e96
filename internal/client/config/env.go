package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file first when one exists. Unset variables leave the
// current value untouched; unparsable numbers are ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CAREERBRIDGE_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("CAREERBRIDGE_CACHE_FILE"); v != "" {
		cfg.CacheFile = v
	}
	if v := os.Getenv("CAREERBRIDGE_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RequestTimeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("CAREERBRIDGE_SYNC_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SyncInterval = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("CAREERBRIDGE_REQUIRE_VERIFIED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.RequireVerified = b
		}
	}
}
