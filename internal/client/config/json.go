package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/careerbridge/careerbridge/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given in whole seconds. Zero-valued fields leave the runtime Config alone,
// so a partial file only overrides what it names.
type JsonConfig struct {
	ServerBaseURL   string `json:"server_base_url"`
	RequestTimeout  int    `json:"request_timeout_seconds"`
	CacheFile       string `json:"cache_file"`
	SyncInterval    int    `json:"sync_interval_seconds"`
	RequireVerified *bool  `json:"require_verified"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flags. No flag, no file, nothing happens. Read or parse errors
// panic; configuration this broken should stop the program before it talks
// to anything.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout) * time.Second
	}
	if jc.CacheFile != "" {
		cfg.CacheFile = jc.CacheFile
	}
	if jc.SyncInterval > 0 {
		cfg.SyncInterval = time.Duration(jc.SyncInterval) * time.Second
	}
	if jc.RequireVerified != nil {
		cfg.RequireVerified = *jc.RequireVerified
	}
}
