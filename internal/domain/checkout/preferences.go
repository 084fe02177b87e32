package checkout

import "context"

// Preference keys persisted per checkout session. They mirror the flags the
// address step writes when the customer asks to save a new address to the
// address book.
const (
	PrefSaveBillingAddress  = "_save_billing_address_to_customer_address_book"
	PrefSaveShippingAddress = "_save_shipping_address_to_customer_address_book"
)

// PreferenceStore is a key-value store for per-order checkout preferences.
// Values are plain strings; a missing key reads as the empty string. The
// store's lifecycle is bound to the checkout session, not to the customer.
type PreferenceStore interface {
	Get(ctx context.Context, orderID, key string) (string, error)
	Set(ctx context.Context, orderID, key, value string) error
	Delete(ctx context.Context, orderID, key string) error
}
