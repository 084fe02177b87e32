package preferences

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/commercekit/checkout/internal/domain/checkout"
)

// defaultTTL bounds preference lifetime to the checkout session. Orders the
// customer abandons should not leave flags behind forever.
const defaultTTL = 24 * time.Hour

// RedisStore implements checkout.PreferenceStore using Redis. It is suitable
// for deployments where multiple checkout instances serve the same session.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisStore creates a Redis-backed preference store.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &RedisStore{
		client:    client,
		keyPrefix: "checkout:prefs:",
		ttl:       ttl,
	}, nil
}

// NewRedisStoreWithClient creates a store with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisStoreWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "checkout:prefs:"
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (s *RedisStore) key(orderID, key string) string {
	return s.keyPrefix + orderID + ":" + key
}

// Get returns the stored value, or the empty string when the key is unset.
func (s *RedisStore) Get(ctx context.Context, orderID, key string) (string, error) {
	value, err := s.client.Get(ctx, s.key(orderID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference: %w", err)
	}
	return value, nil
}

// Set stores a value under the order-scoped key, refreshing the session TTL.
func (s *RedisStore) Set(ctx context.Context, orderID, key, value string) error {
	if err := s.client.Set(ctx, s.key(orderID, key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write preference: %w", err)
	}
	return nil
}

// Delete removes the key. Deleting a missing key is not an error.
func (s *RedisStore) Delete(ctx context.Context, orderID, key string) error {
	if err := s.client.Del(ctx, s.key(orderID, key)).Err(); err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements the PreferenceStore interface
var _ checkout.PreferenceStore = (*RedisStore)(nil)
