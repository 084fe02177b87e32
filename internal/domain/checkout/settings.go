package checkout

// AddressesState is the address slice of the derived settings.
type AddressesState struct {
	HasCustomerAddresses      bool              `json:"hasCustomerAddresses"`
	BillingAddress            *Address          `json:"billingAddress,omitempty"`
	ShippingAddress           *Address          `json:"shippingAddress,omitempty"`
	HasBillingAddress         bool              `json:"hasBillingAddress"`
	HasShippingAddress        bool              `json:"hasShippingAddress"`
	CustomerAddresses         []CustomerAddress `json:"customerAddresses,omitempty"`
	IsUsingNewBillingAddress  bool              `json:"isUsingNewBillingAddress"`
	IsUsingNewShippingAddress bool              `json:"isUsingNewShippingAddress"`
	HasSameAddresses          bool              `json:"hasSameAddresses"`
}

// PaymentState is the payment slice of the derived settings.
type PaymentState struct {
	HasPaymentMethod bool           `json:"hasPaymentMethod"`
	PaymentMethod    *PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentSource    *PaymentSource `json:"paymentSource,omitempty"`
	IsComplete       bool           `json:"isComplete"`
	IsCreditCard     bool           `json:"isCreditCard"`
}

// Settings is the consolidated view state the checkout UI renders from.
// It is recomputed from the order on every change and never persisted.
type Settings struct {
	IsGuest                 bool   `json:"isGuest"`
	IsPaymentRequired       bool   `json:"isPaymentRequired"`
	IsShipmentRequired      bool   `json:"isShipmentRequired"`
	ShippingCountryCodeLock string `json:"shippingCountryCodeLock,omitempty"`
	LanguageCode            string `json:"languageCode,omitempty"`
	HasEmailAddress         bool   `json:"hasEmailAddress"`
	EmailAddress            string `json:"emailAddress,omitempty"`

	AddressesState
	ShipmentsState
	PaymentState

	ShippingMethodName string `json:"shippingMethodName,omitempty"`
	ReturnURL          string `json:"returnUrl,omitempty"`
	CartURL            string `json:"cartUrl,omitempty"`
	TaxIncluded        bool   `json:"taxIncluded"`
	RequiresBillingInfo bool  `json:"requiresBillingInfo"`
}

// CalculateAddresses derives the address state from the order. When an
// explicit address book is passed it takes precedence over the one attached
// to the order's customer; the default-address flow uses this to reflect a
// freshly stamped book without refetching.
func CalculateAddresses(order *Order, addresses []CustomerAddress) AddressesState {
	book := addresses
	if book == nil {
		book = order.CustomerAddresses()
	}
	return AddressesState{
		HasCustomerAddresses:      len(book) >= 1,
		BillingAddress:            order.BillingAddress,
		ShippingAddress:           order.ShippingAddress,
		HasBillingAddress:         order.BillingAddress != nil,
		HasShippingAddress:        order.ShippingAddress != nil,
		CustomerAddresses:         book,
		IsUsingNewBillingAddress:  IsNewAddress(order.BillingAddress, book, order.Guest),
		IsUsingNewShippingAddress: IsNewAddress(order.ShippingAddress, book, order.Guest),
		HasSameAddresses:          BillingSameAsShipping(order.BillingAddress, order.ShippingAddress),
	}
}

// CheckPaymentMethod derives the payment state from the order. A card token
// in any of the known source locations counts as an attached payment method;
// orders that require no payment at all count as having one.
func CheckPaymentMethod(order *Order) PaymentState {
	hasPaymentMethod := order.PaymentSource.CardToken() != ""
	if !hasPaymentMethod && !order.PaymentRequired() {
		hasPaymentMethod = true
	}
	return PaymentState{
		HasPaymentMethod: hasPaymentMethod,
		PaymentMethod:    order.PaymentMethod,
		PaymentSource:    order.PaymentSource,
		IsComplete:       order.IsComplete(),
		IsCreditCard:     order.PaymentMethod.IsCreditCard(),
	}
}

// CalculateSettings composes the full derived settings for the order. When
// no shipment is required the delivery step is already satisfied: no
// selections and the shipping-method flag forced true.
func CalculateSettings(order *Order, isShipmentRequired bool) Settings {
	var shipments ShipmentsState
	if isShipmentRequired {
		shipments = CalculateSelectedShipments(PrepareShipments(order.Shipments), nil)
	} else {
		shipments = ShipmentsState{
			Shipments:         []ShipmentSelection{},
			HasShippingMethod: true,
		}
	}

	return Settings{
		IsGuest:                 order.Guest,
		IsPaymentRequired:       order.PaymentRequired(),
		IsShipmentRequired:      isShipmentRequired,
		ShippingCountryCodeLock: order.ShippingCountryCodeLock,
		LanguageCode:            order.LanguageCode,
		HasEmailAddress:         order.CustomerEmail != "",
		EmailAddress:            order.CustomerEmail,
		AddressesState:          CalculateAddresses(order, nil),
		ShipmentsState:          shipments,
		PaymentState:            CheckPaymentMethod(order),
		ReturnURL:               order.ReturnURL,
		CartURL:                 order.CartURL,
		TaxIncluded:             order.TaxIncluded,
		RequiresBillingInfo:     order.RequiresBillingInfo,
	}
}

// AddressesPatch is the partial state produced by the best-effort
// default-address assignment. Empty means the assignment did not apply.
type AddressesPatch struct {
	Applied                   bool              `json:"applied"`
	CustomerAddresses         []CustomerAddress `json:"customerAddresses,omitempty"`
	HasSameAddresses          bool              `json:"hasSameAddresses,omitempty"`
	HasBillingAddress         bool              `json:"hasBillingAddress,omitempty"`
	HasShippingAddress        bool              `json:"hasShippingAddress,omitempty"`
	IsUsingNewBillingAddress  bool              `json:"isUsingNewBillingAddress"`
	IsUsingNewShippingAddress bool              `json:"isUsingNewShippingAddress"`
	BillingAddress            *Address          `json:"billingAddress,omitempty"`
	ShippingAddress           *Address          `json:"shippingAddress,omitempty"`
}

// ShippingPatch is the partial state produced by automated shipping-method
// assignment. Empty means no assignment happened (zero or multiple candidate
// methods, or no addresses yet).
type ShippingPatch struct {
	Applied            bool   `json:"applied"`
	HasShippingMethod  bool   `json:"hasShippingMethod,omitempty"`
	ShippingMethodName string `json:"shippingMethodName,omitempty"`
}
