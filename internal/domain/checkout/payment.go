package checkout

// PaymentSourceType tags a payment method with the payment source resource
// it creates on the commerce platform.
type PaymentSourceType string

const (
	PaymentSourceTypeAdyen       PaymentSourceType = "adyen_payments"
	PaymentSourceTypeStripe      PaymentSourceType = "stripe_payments"
	PaymentSourceTypeBraintree   PaymentSourceType = "braintree_payments"
	PaymentSourceTypeCheckoutCom PaymentSourceType = "checkout_com_payments"
	PaymentSourceTypePaypal      PaymentSourceType = "paypal_payments"
	PaymentSourceTypeWireTransfer PaymentSourceType = "wire_transfers"
)

// IsCreditCard reports whether the source type belongs to the credit-card
// processor family.
func (t PaymentSourceType) IsCreditCard() bool {
	switch t {
	case PaymentSourceTypeAdyen,
		PaymentSourceTypeStripe,
		PaymentSourceTypeBraintree,
		PaymentSourceTypeCheckoutCom:
		return true
	}
	return false
}

// PaymentMethod is a payment option attached to the order.
type PaymentMethod struct {
	ID                string
	Name              string
	PaymentSourceType PaymentSourceType
}

// IsCreditCard reports whether the payment method is a credit-card payment.
// A nil method is not a credit card.
func (m *PaymentMethod) IsCreditCard() bool {
	if m == nil {
		return false
	}
	return m.PaymentSourceType.IsCreditCard()
}

// PaymentSource is the provider-specific payment source attached to the
// order. It is a tagged union over the supported providers; the provider
// variants differ only in where they expose a stored-card token, so the
// variant payloads are modeled as the three known token locations rather
// than one struct per provider.
type PaymentSource struct {
	ID       string
	Provider PaymentSourceType

	Options         *PaymentSourceOptions
	Metadata        *PaymentSourceMetadata
	PaymentResponse *PaymentResponse
}

// PaymentSourceOptions carries a stored-card token for providers that expose
// it through source options (Adyen, Checkout.com).
type PaymentSourceOptions struct {
	Card string
}

// PaymentSourceMetadata carries a stored-card token for providers that expose
// it through source metadata (Stripe, Braintree).
type PaymentSourceMetadata struct {
	Card string
}

// PaymentResponse carries the processor response for providers that expose
// the selected source inside it (Paypal, and Adyen after authorization).
type PaymentResponse struct {
	Source string
}

// CardToken returns the stored-card token found in any of the three known
// locations, probing metadata, options, then the payment response. An empty
// string means no token is attached.
func (s *PaymentSource) CardToken() string {
	if s == nil {
		return ""
	}
	if s.Metadata != nil && s.Metadata.Card != "" {
		return s.Metadata.Card
	}
	if s.Options != nil && s.Options.Card != "" {
		return s.Options.Card
	}
	if s.PaymentResponse != nil && s.PaymentResponse.Source != "" {
		return s.PaymentResponse.Source
	}
	return ""
}
