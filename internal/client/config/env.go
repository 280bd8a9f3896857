package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, loading a local .env
// file first when one exists (a missing file is not an error).
//
// Recognized variables:
//
//	SUPPORTPILOT_API_URL       base URL of the backend API
//	SUPPORTPILOT_TIMEOUT       request timeout in seconds
//	SUPPORTPILOT_DB            path to the local sqlite database
//	SUPPORTPILOT_LOG_LEVEL     debug | info | warn | error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SUPPORTPILOT_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SUPPORTPILOT_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("SUPPORTPILOT_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("SUPPORTPILOT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
