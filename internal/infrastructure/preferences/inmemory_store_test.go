package preferences

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/checkout/internal/domain/checkout"
)

func TestInMemoryStore_SetAndGet(t *testing.T) {
	store := NewInMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "ord_1", checkout.PrefSaveBillingAddress, "false"))

	value, err := store.Get(ctx, "ord_1", checkout.PrefSaveBillingAddress)
	require.NoError(t, err)
	assert.Equal(t, "false", value)
}

func TestInMemoryStore_MissingKeyReadsEmpty(t *testing.T) {
	store := NewInMemoryStore(time.Minute)

	value, err := store.Get(context.Background(), "ord_1", checkout.PrefSaveShippingAddress)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestInMemoryStore_KeysAreOrderScoped(t *testing.T) {
	store := NewInMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "ord_1", checkout.PrefSaveBillingAddress, "true"))

	value, err := store.Get(ctx, "ord_2", checkout.PrefSaveBillingAddress)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestInMemoryStore_Delete(t *testing.T) {
	store := NewInMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "ord_1", checkout.PrefSaveBillingAddress, "true"))
	require.NoError(t, store.Delete(ctx, "ord_1", checkout.PrefSaveBillingAddress))
	// Deleting a missing key is not an error.
	require.NoError(t, store.Delete(ctx, "ord_1", checkout.PrefSaveBillingAddress))

	value, err := store.Get(ctx, "ord_1", checkout.PrefSaveBillingAddress)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestInMemoryStore_Expiration(t *testing.T) {
	store := NewInMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "ord_1", checkout.PrefSaveBillingAddress, "true"))
	time.Sleep(20 * time.Millisecond)

	value, err := store.Get(ctx, "ord_1", checkout.PrefSaveBillingAddress)
	require.NoError(t, err)
	assert.Empty(t, value)
}
