package config

import "time"

// Config holds runtime settings for the cotizador CLI.
//
// Fields:
//   - APIBaseURL: base URL of the quotation backend, e.g. "http://127.0.0.1:8000".
//   - HTTPTimeout: overall per-request timeout of the HTTP client.
//   - DatabaseFile: path of the local SQLite file holding the saved session token.
//   - DownloadsDir: directory (relative to cwd) where quotation PDFs are saved.
type Config struct {
	APIBaseURL   string
	HTTPTimeout  time.Duration
	DatabaseFile string
	DownloadsDir string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.HTTPTimeout = 30 * time.Second
	c.DatabaseFile = "cotizador.db"
	c.DownloadsDir = "downloads"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (.env supported), a JSON file (if given) and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
