package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"speakout"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()
	require.Equal(t, "http://localhost:8080/api", cfg.ServerBaseURL)
	require.Equal(t, "speakout.db", cfg.DatabasePath)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigDefaultsOnly(t *testing.T) {
	resetArgs(t)
	cfg := LoadConfig()
	require.Equal(t, "http://localhost:8080/api", cfg.ServerBaseURL)
}

func TestLoadConfigEnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("SPEAKOUT_API_BASE_URL", "http://env:9090/api")
	t.Setenv("SPEAKOUT_LOG_LEVEL", "debug")

	cfg := LoadConfig()
	require.Equal(t, "http://env:9090/api", cfg.ServerBaseURL)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "speakout.db", cfg.DatabasePath)
}

func TestLoadConfigJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_base_url": "http://json:8081/api",
		"database_path": "json.db"
	}`), 0o600))

	resetArgs(t, "-c", path)
	cfg := LoadConfig()
	require.Equal(t, "http://json:8081/api", cfg.ServerBaseURL)
	require.Equal(t, "json.db", cfg.DatabasePath)
	// Fields absent from the file keep their defaults.
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigEnvWinsOverJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_base_url": "http://json:8081/api"}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv("SPEAKOUT_API_BASE_URL", "http://env:9090/api")

	cfg := LoadConfig()
	require.Equal(t, "http://env:9090/api", cfg.ServerBaseURL)
}

func TestLoadConfigFlagsWinLast(t *testing.T) {
	resetArgs(t, "-a", "http://flag:7070/api", "-d", "flag.db")
	t.Setenv("SPEAKOUT_API_BASE_URL", "http://env:9090/api")

	cfg := LoadConfig()
	require.Equal(t, "http://flag:7070/api", cfg.ServerBaseURL)
	require.Equal(t, "flag.db", cfg.DatabasePath)
}

func TestLoadConfigBrokenJSONPanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	resetArgs(t, "-c", path)
	require.Panics(t, func() { LoadConfig() })
}

func TestLoadConfigMissingJSONPanics(t *testing.T) {
	resetArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))
	require.Panics(t, func() { LoadConfig() })
}
