package commerce

import (
	"github.com/shopspring/decimal"

	"github.com/commercekit/checkout/internal/domain/checkout"
)

// Wire types for the commerce platform API. Field names follow the
// platform's resource attributes; converters map them onto the domain model.

type orderResource struct {
	ID                        string  `json:"id"`
	Guest                     bool    `json:"guest"`
	CustomerEmail             string  `json:"customer_email"`
	Status                    string  `json:"status"`
	LanguageCode              string  `json:"language_code"`
	ShippingCountryCodeLock   string  `json:"shipping_country_code_lock"`
	TaxIncluded               bool    `json:"tax_included"`
	RequiresBillingInfo       bool    `json:"requires_billing_info"`
	TotalAmountWithTaxesFloat float64 `json:"total_amount_with_taxes_float"`
	ReturnURL                 string  `json:"return_url"`
	CartURL                   string  `json:"cart_url"`

	BillingAddress  *addressResource       `json:"billing_address"`
	ShippingAddress *addressResource       `json:"shipping_address"`
	Shipments       []shipmentResource     `json:"shipments"`
	PaymentMethod   *paymentMethodResource `json:"payment_method"`
	PaymentSource   *paymentSourceResource `json:"payment_source"`
	Customer        *customerResource      `json:"customer"`
}

type addressResource struct {
	ID          string `json:"id"`
	Reference   string `json:"reference"`
	CountryCode string `json:"country_code"`
	Name        string `json:"name"`
}

type customerResource struct {
	ID                string                    `json:"id"`
	Email             string                    `json:"email"`
	CustomerAddresses []customerAddressResource `json:"customer_addresses"`
}

type customerAddressResource struct {
	ID      string           `json:"id"`
	Address *addressResource `json:"address"`
}

type shipmentResource struct {
	ID             string                  `json:"id"`
	ShippingMethod *shippingMethodResource `json:"shipping_method"`
}

type shippingMethodResource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type paymentMethodResource struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	PaymentSourceType string `json:"payment_source_type"`
}

type paymentSourceResource struct {
	ID              string                  `json:"id"`
	Type            string                  `json:"type"`
	Options         *paymentOptionsResource `json:"options"`
	Metadata        *paymentOptionsResource `json:"metadata"`
	PaymentResponse *paymentResponseResource `json:"payment_response"`
}

type paymentOptionsResource struct {
	Card string `json:"card"`
}

type paymentResponseResource struct {
	Source string `json:"source"`
}

type lineItemResource struct {
	ID       string            `json:"id"`
	ItemType string            `json:"item_type"`
	Quantity int               `json:"quantity"`
	Item     *lineItemItemData `json:"item"`
}

type lineItemItemData struct {
	DoNotShip bool `json:"do_not_ship"`
}

type lineItemsResponse struct {
	LineItems []lineItemResource `json:"line_items"`
}

type shippingMethodsResponse struct {
	ShippingMethods []shippingMethodResource `json:"shipping_methods"`
}

// apiErrorDetail is one error entry in the platform's error envelope.
type apiErrorDetail struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status string `json:"status"`
}

type apiErrorResponse struct {
	Errors []apiErrorDetail `json:"errors"`
}

// Update payloads. The underscore-prefixed clone fields trigger server-side
// address cloning.
type orderUpdateRequest struct {
	BillingAddressCloneID  string `json:"_billing_address_clone_id,omitempty"`
	ShippingAddressCloneID string `json:"_shipping_address_clone_id,omitempty"`
}

type addressUpdateRequest struct {
	Reference string `json:"reference"`
}

type shipmentUpdateRequest struct {
	ShippingMethodID string `json:"shipping_method_id"`
}

// ---------------------------------------------------------------------------
// Converters
// ---------------------------------------------------------------------------

func (r *orderResource) toDomain() *checkout.Order {
	order := &checkout.Order{
		ID:                      r.ID,
		Guest:                   r.Guest,
		CustomerEmail:           r.CustomerEmail,
		Status:                  checkout.OrderStatus(r.Status),
		LanguageCode:            r.LanguageCode,
		ShippingCountryCodeLock: r.ShippingCountryCodeLock,
		TaxIncluded:             r.TaxIncluded,
		RequiresBillingInfo:     r.RequiresBillingInfo,
		TotalAmountWithTaxes:    decimal.NewFromFloat(r.TotalAmountWithTaxesFloat),
		ReturnURL:               r.ReturnURL,
		CartURL:                 r.CartURL,
		BillingAddress:          r.BillingAddress.toDomain(),
		ShippingAddress:         r.ShippingAddress.toDomain(),
	}

	for _, s := range r.Shipments {
		order.Shipments = append(order.Shipments, s.toDomain())
	}

	if r.PaymentMethod != nil {
		order.PaymentMethod = &checkout.PaymentMethod{
			ID:                r.PaymentMethod.ID,
			Name:              r.PaymentMethod.Name,
			PaymentSourceType: checkout.PaymentSourceType(r.PaymentMethod.PaymentSourceType),
		}
	}

	if r.PaymentSource != nil {
		source := &checkout.PaymentSource{
			ID:       r.PaymentSource.ID,
			Provider: checkout.PaymentSourceType(r.PaymentSource.Type),
		}
		if r.PaymentSource.Options != nil {
			source.Options = &checkout.PaymentSourceOptions{Card: r.PaymentSource.Options.Card}
		}
		if r.PaymentSource.Metadata != nil {
			source.Metadata = &checkout.PaymentSourceMetadata{Card: r.PaymentSource.Metadata.Card}
		}
		if r.PaymentSource.PaymentResponse != nil {
			source.PaymentResponse = &checkout.PaymentResponse{Source: r.PaymentSource.PaymentResponse.Source}
		}
		order.PaymentSource = source
	}

	if r.Customer != nil {
		customer := &checkout.Customer{
			ID:    r.Customer.ID,
			Email: r.Customer.Email,
		}
		for _, ca := range r.Customer.CustomerAddresses {
			customer.CustomerAddresses = append(customer.CustomerAddresses, checkout.CustomerAddress{
				ID:      ca.ID,
				Address: ca.Address.toDomain(),
			})
		}
		order.Customer = customer
	}

	return order
}

func (r *addressResource) toDomain() *checkout.Address {
	if r == nil {
		return nil
	}
	return &checkout.Address{
		ID:          r.ID,
		Reference:   r.Reference,
		CountryCode: r.CountryCode,
		Name:        r.Name,
	}
}

func (r shipmentResource) toDomain() checkout.Shipment {
	shipment := checkout.Shipment{ID: r.ID}
	if r.ShippingMethod != nil {
		shipment.ShippingMethod = &checkout.ShippingMethod{
			ID:   r.ShippingMethod.ID,
			Name: r.ShippingMethod.Name,
		}
	}
	return shipment
}

func (r lineItemResource) toDomain() checkout.LineItem {
	item := checkout.LineItem{
		ID:       r.ID,
		ItemType: checkout.LineItemType(r.ItemType),
		Quantity: r.Quantity,
	}
	if r.Item != nil {
		item.DoNotShip = r.Item.DoNotShip
	}
	return item
}
