package checkout

import (
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order on the commerce platform
type OrderStatus string

const (
	OrderStatusDraft    OrderStatus = "draft"
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusPlaced   OrderStatus = "placed"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// Order is the aggregate root for a checkout session. It mirrors the order
// resource returned by the commerce platform, including the related resources
// the checkout flow needs (addresses, shipments, payment method/source,
// customer with address book).
type Order struct {
	ID                      string
	Guest                   bool
	CustomerEmail           string
	Status                  OrderStatus
	LanguageCode            string
	ShippingCountryCodeLock string
	TaxIncluded             bool
	RequiresBillingInfo     bool
	TotalAmountWithTaxes    decimal.Decimal
	ReturnURL               string
	CartURL                 string

	BillingAddress  *Address
	ShippingAddress *Address
	Shipments       []Shipment
	PaymentMethod   *PaymentMethod
	PaymentSource   *PaymentSource
	Customer        *Customer
}

// IsComplete reports whether the order reached its terminal state.
func (o *Order) IsComplete() bool {
	return o.Status == OrderStatusPlaced
}

// PaymentRequired reports whether the order needs a payment instrument.
// Zero-amount orders (fully discounted, gift-card covered) require none.
func (o *Order) PaymentRequired() bool {
	return !o.TotalAmountWithTaxes.IsZero()
}

// CustomerAddresses returns the customer's saved address book, or nil for
// guest orders and orders without an attached customer.
func (o *Order) CustomerAddresses() []CustomerAddress {
	if o.Customer == nil {
		return nil
	}
	return o.Customer.CustomerAddresses
}

// Customer is the owner of the order's address book.
type Customer struct {
	ID                string
	Email             string
	CustomerAddresses []CustomerAddress
}

// CustomerAddress is an address-book entry: an Address owned by a Customer.
type CustomerAddress struct {
	ID      string
	Address *Address
}
