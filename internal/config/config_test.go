package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.APIBaseURL)
	assert.Equal(t, 30*time.Second, c.HTTPTimeout)
	assert.Equal(t, "cotizador.db", c.DatabaseFile)
	assert.Equal(t, "downloads", c.DownloadsDir)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("COTIZADOR_API_URL", "http://api.example:9000")
	t.Setenv("COTIZADOR_TIMEOUT", "5s")
	t.Setenv("COTIZADOR_DB", "alt.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://api.example:9000", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "alt.db", cfg.DatabaseFile)
}

func TestParseEnv_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("COTIZADOR_TIMEOUT", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}
