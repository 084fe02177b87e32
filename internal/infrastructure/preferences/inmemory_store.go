package preferences

import (
	"context"
	"sync"
	"time"

	"github.com/commercekit/checkout/internal/domain/checkout"
)

// entry is a stored preference value with expiration
type entry struct {
	value     string
	expiresAt time.Time
}

// InMemoryStore implements checkout.PreferenceStore using an in-memory map.
// Suitable for single-instance deployments and testing; state is lost on
// restart and not shared across instances.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// NewInMemoryStore creates an in-memory preference store.
func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &InMemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

func storeKey(orderID, key string) string {
	return orderID + ":" + key
}

// Get returns the stored value, or the empty string when the key is unset
// or expired.
func (s *InMemoryStore) Get(ctx context.Context, orderID, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[storeKey(orderID, key)]
	if !ok || time.Now().After(e.expiresAt) {
		return "", nil
	}
	return e.value, nil
}

// Set stores a value under the order-scoped key.
func (s *InMemoryStore) Set(ctx context.Context, orderID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[storeKey(orderID, key)] = entry{
		value:     value,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Delete removes the key. Deleting a missing key is not an error.
func (s *InMemoryStore) Delete(ctx context.Context, orderID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, storeKey(orderID, key))
	return nil
}

// Ensure InMemoryStore implements the PreferenceStore interface
var _ checkout.PreferenceStore = (*InMemoryStore)(nil)
