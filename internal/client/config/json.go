package config

import (
	"encoding/json"
	"os"

	"github.com/Tharun-raj-u/speakout/internal/flagx"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config after parsing; empty fields leave the
// existing value in place.
type JSONConfig struct {
	ServerBaseURL string `json:"server_base_url"`
	DatabasePath  string `json:"database_path"`
	LogLevel      string `json:"log_level"`
}

// parseJSON overlays Config with values loaded from a JSON file named by
// the -c/-config flag. No flag means no JSON is loaded. Read or unmarshal
// errors panic; the entrypoint treats a broken explicit config file as
// unrecoverable.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
