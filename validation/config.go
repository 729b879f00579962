package validation

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/grzegorzmaniak/gothic-validator/cache"
)

const EnvPrefix = "VALIDATION_"

// Config drives the default validator built when no validator is supplied or
// registered. Register a *Config in the container to override DefaultConfig.
type Config struct {
	// Locale selects the translations used for violation messages.
	Locale string `env:"LOCALE" envDefault:"en"`

	// JSONFieldNames reports violations using json tag names instead of Go field names.
	JSONFieldNames bool `env:"JSON_FIELD_NAMES" envDefault:"true"`

	// SupportsCache sizes the cache holding per-type Supports decisions.
	SupportsCache cache.Config `envPrefix:"SUPPORTS_CACHE_"`
}

func DefaultConfig() *Config {
	return &Config{
		Locale:         DefaultLocale,
		JSONFieldNames: true,
	}
}

// LoadConfig reads the VALIDATION_* environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("validation: failed to load config: %w", err)
	}
	return cfg, nil
}
