package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "HOST", "PORT", "ALLOW_ORIGINS", "LOG_LEVEL", "MAX_UPLOAD_MB", "LOG_FILE",
		"DEFAULT_LOCALE", "DEFAULT_CURRENCY", "SCALE_CORRECTNESS", "CURRENCY_CORRECTNESS", "NEGATIVE_ALLOWED",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "127.0.0.1:8082", cfg.Addr())
	assert.True(t, cfg.ScaleCorrectness)
	assert.True(t, cfg.CurrencyCorrectness)
	assert.True(t, cfg.NegativeAllowed)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "moneylaundry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 9000
default_locale: it_IT
default_currency: EUR
scale_correctness: false
allow_origins: [https://a.example, https://b.example]
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9100")
	t.Setenv("NEGATIVE_ALLOWED", "false")
	t.Setenv("CURRENCY_CORRECTNESS", "nope")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "it_IT", cfg.Locale)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)

	o := cfg.ValidationOptions()
	assert.Equal(t, "EUR", o.CurrencyCode)
	assert.False(t, o.ScaleCorrectness)
	assert.True(t, o.CurrencyCorrectness, "unparsable bool keeps the previous value")
	assert.False(t, o.NegativeAllowed)
}

func TestLoadBadFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [1"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	_, err = Load()
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	cfg := Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "nested", "out.log")
	cfg.LogLevel = "debug"
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	logger := SetupLogger(cfg)
	logger.Info().Msg("hello")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.FileExists(t, cfg.LogFile)
}
