package preferences

import (
	"time"

	"go.uber.org/zap"

	"github.com/commercekit/checkout/internal/domain/checkout"
)

// StoreFactory creates preference stores based on configuration.
type StoreFactory struct {
	redisConfig           RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// StoreFactoryOption is a functional option for configuring the factory
type StoreFactoryOption func(*StoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory store
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewStoreFactory creates a new factory
func NewStoreFactory(cfg RedisConfig, opts ...StoreFactoryOption) *StoreFactory {
	f := &StoreFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateStore creates a preference store, trying Redis first and falling
// back to in-memory when Redis is unavailable and fallback is allowed.
// Falling back means save-address preferences are lost on restart and not
// shared across instances, which only costs the customer a convenience.
func (f *StoreFactory) CreateStore() (checkout.PreferenceStore, error) {
	store, err := NewRedisStore(f.redisConfig)
	if err == nil {
		f.logger.Info("using Redis preference store")
		return store, nil
	}

	if !f.allowInMemoryFallback {
		return nil, err
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory preference store",
		zap.Error(err),
	)
	return NewInMemoryStore(f.ttl()), nil
}

func (f *StoreFactory) ttl() time.Duration {
	if f.redisConfig.TTL > 0 {
		return f.redisConfig.TTL
	}
	return defaultTTL
}
