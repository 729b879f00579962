package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristrettoStore "github.com/eko/gocache/store/ristretto/v4"
	"github.com/grzegorzmaniak/gothic-validator/helpers"
	"go.uber.org/zap"
)

const (
	DefaultMaxCost     = 100000
	DefaultNumCounters = DefaultMaxCost * 10
	DefaultBufferItems = 64
	DefaultExpiration  = 30 * time.Minute
)

type Config struct {

	// MaxCost is the maximum "cost" held by the Ristretto cache. Every decision is
	// stored with a cost of 1, so this is effectively the max number of cached types.
	MaxCost int64 `env:"MAX_COST"`

	// NumCounters determines the number of counters for Ristretto's admission policy.
	// A common rule of thumb is 10 * MaxCost.
	NumCounters int64 `env:"NUM_COUNTERS"`

	// BufferItems configures the number of keys per Get buffer.
	BufferItems int64 `env:"BUFFER_ITEMS"`

	// Expiration is the TTL applied to every entry by the gocache store adapter.
	Expiration time.Duration `env:"EXPIRATION"`
}

// Manager lazily builds a ristretto backed gocache instance. Type metadata never
// changes while the process runs, so the cache only exists to bound memory.
type Manager struct {
	Config    Config
	instance  cache.CacheInterface[[]byte]
	initOnce  sync.Once
	initError error
}

func (m *Manager) GetCache() (cache.CacheInterface[[]byte], error) {
	m.initOnce.Do(func() {
		client, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: helpers.DefaultInt64(m.Config.NumCounters, DefaultNumCounters),
			MaxCost:     helpers.DefaultInt64(m.Config.MaxCost, DefaultMaxCost),
			BufferItems: helpers.DefaultInt64(m.Config.BufferItems, DefaultBufferItems),
			Metrics:     false,
		})

		if err != nil {
			zap.L().Error("cache.Manager: Failed to create Ristretto client", zap.Error(err))
			m.initError = fmt.Errorf("ristretto client initialization failed: %w", err)
			return
		}

		adapter := ristrettoStore.NewRistretto(
			client,
			store.WithExpiration(helpers.DefaultTimeDuration(m.Config.Expiration, DefaultExpiration)),
			store.WithCost(1),
		)

		m.instance = cache.New[[]byte](adapter)
		zap.L().Debug("cache.Manager: Ristretto cache initialized")
	})

	if m.initError != nil {
		return nil, m.initError
	}

	if m.instance == nil {
		return nil, fmt.Errorf("internal error: cache not initialized despite no explicit init error")
	}

	return m.instance, nil
}

// BuildManager returns a Manager with zero values in config replaced by the defaults.
func BuildManager(config *Config) *Manager {
	if config == nil {
		config = &Config{}
	}

	return &Manager{
		Config: Config{
			MaxCost:     helpers.DefaultInt64(config.MaxCost, DefaultMaxCost),
			NumCounters: helpers.DefaultInt64(config.NumCounters, DefaultNumCounters),
			BufferItems: helpers.DefaultInt64(config.BufferItems, DefaultBufferItems),
			Expiration:  helpers.DefaultTimeDuration(config.Expiration, DefaultExpiration),
		},
	}
}
