package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.True(t, cfg.JSONFieldNames)
	assert.Zero(t, cfg.SupportsCache.MaxCost)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("VALIDATION_LOCALE", "fr")
	t.Setenv("VALIDATION_JSON_FIELD_NAMES", "false")
	t.Setenv("VALIDATION_SUPPORTS_CACHE_MAX_COST", "10")
	t.Setenv("VALIDATION_SUPPORTS_CACHE_EXPIRATION", "1m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "fr", cfg.Locale)
	assert.False(t, cfg.JSONFieldNames)
	assert.Equal(t, int64(10), cfg.SupportsCache.MaxCost)
	assert.Equal(t, time.Minute, cfg.SupportsCache.Expiration)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("VALIDATION_JSON_FIELD_NAMES", "maybe")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.True(t, cfg.JSONFieldNames)
}
