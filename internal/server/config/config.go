// Package config holds the dev server's runtime settings.
package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/careerbridge/careerbridge/internal/flagx"
	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the listen address, host:port.
	Addr string
	// SecretKey signs session tokens. The default is fine for local use only.
	SecretKey string
	// TokenValidityDuration bounds how long a session cookie stays valid.
	TokenValidityDuration time.Duration
}

func (c *Config) LoadDefaults() {
	c.Addr = ":3000"
	c.SecretKey = "careerbridge-dev-secret"
	c.TokenValidityDuration = 24 * time.Hour
}

// LoadConfig applies defaults, then the environment (.env included), then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CAREERBRIDGE_DEV_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("CAREERBRIDGE_DEV_SECRET"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("CAREERBRIDGE_DEV_TOKEN_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TokenValidityDuration = time.Duration(n) * time.Hour
		}
	}
}

func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-addr", "-secret"})

	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.SecretKey, "secret", cfg.SecretKey, "token signing secret")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
