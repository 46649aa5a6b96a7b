package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, if present;
// real environment variables win over .env entries.
//
// Recognized variables:
//
//	COTIZADOR_API_URL    base URL of the backend
//	COTIZADOR_TIMEOUT    HTTP timeout, e.g. "30s"
//	COTIZADOR_DB         local database file
//	COTIZADOR_DOWNLOADS  downloads directory
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("COTIZADOR_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("COTIZADOR_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if v := os.Getenv("COTIZADOR_DB"); v != "" {
		cfg.DatabaseFile = v
	}
	if v := os.Getenv("COTIZADOR_DOWNLOADS"); v != "" {
		cfg.DownloadsDir = v
	}
}
