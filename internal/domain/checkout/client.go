package checkout

import "context"

// OrderUpdate is a partial order update sent to the commerce platform.
// The clone IDs trigger server-side cloning of an existing address into the
// order's billing/shipping slot.
type OrderUpdate struct {
	ID                     string
	BillingAddressCloneID  string
	ShippingAddressCloneID string
}

// AddressUpdate is a partial address update sent to the commerce platform.
type AddressUpdate struct {
	ID        string
	Reference string
}

// Client is the port to the commerce platform API. All operations are
// request/response calls against resources identified by ID; implementations
// live in infrastructure.
type Client interface {
	// RetrieveOrder fetches the order aggregate with the related resources
	// the checkout flow needs.
	RetrieveOrder(ctx context.Context, orderID string) (*Order, error)

	// RetrieveOrderLineItems fetches the order's line items with their item
	// attributes. A nil slice means the order has no line items.
	RetrieveOrderLineItems(ctx context.Context, orderID string) ([]LineItem, error)

	// UpdateOrder applies a partial update and returns the order with its
	// billing and shipping addresses included.
	UpdateOrder(ctx context.Context, update OrderUpdate) (*Order, error)

	// UpdateAddress applies a partial address update.
	UpdateAddress(ctx context.Context, update AddressUpdate) error

	// UpdateShipmentShippingMethod assigns a shipping method to a shipment.
	UpdateShipmentShippingMethod(ctx context.Context, shipmentID, shippingMethodID string) error

	// ListShippingMethods lists the shipping methods available to the
	// current market.
	ListShippingMethods(ctx context.Context) ([]ShippingMethod, error)
}
