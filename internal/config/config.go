package config

import (
	"os"

	"github.com/diewo77/go-mercuriale/internal/i18n"
)

type Config struct {
	DataDir   string
	StateDSN  string
	ExportDir string
	Lang      string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.DataDir = getEnv("MERCURIALE_DATA_DIR", "data")
	cfg.StateDSN = getEnv("MERCURIALE_STATE_DSN", "mercuriale.db")
	cfg.ExportDir = getEnv("MERCURIALE_EXPORT_DIR", ".")
	cfg.Lang = i18n.DetectLanguage(getEnv("MERCURIALE_LANG", os.Getenv("LANG")))
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
