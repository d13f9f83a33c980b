package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, loading a .env file
// from the working directory first when present. A missing .env is fine.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SPEAKOUT_API_BASE_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("SPEAKOUT_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("SPEAKOUT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
