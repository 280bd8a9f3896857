package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/supportpilot/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is given in seconds, matching the -t flag.
type JsonConfig struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"request_timeout_seconds"`
	DatabasePath   string `json:"database_path"`
	LogLevel       string `json:"log_level"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. Absent flag means no JSON layer. Unset fields in the file
// leave the current value untouched. Read or unmarshal errors panic; config
// is resolved once at startup and a broken file should stop the program.
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

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.TimeoutSeconds) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
