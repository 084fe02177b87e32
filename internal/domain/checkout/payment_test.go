package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentSourceType_IsCreditCard(t *testing.T) {
	cardTypes := []PaymentSourceType{
		PaymentSourceTypeAdyen,
		PaymentSourceTypeStripe,
		PaymentSourceTypeBraintree,
		PaymentSourceTypeCheckoutCom,
	}
	for _, typ := range cardTypes {
		assert.True(t, typ.IsCreditCard(), "%s should be a credit card type", typ)
	}

	assert.False(t, PaymentSourceTypePaypal.IsCreditCard())
	assert.False(t, PaymentSourceTypeWireTransfer.IsCreditCard())
	assert.False(t, PaymentSourceType("unknown").IsCreditCard())
}

func TestPaymentMethod_IsCreditCard_Nil(t *testing.T) {
	var method *PaymentMethod
	assert.False(t, method.IsCreditCard())
}

func TestPaymentSource_CardToken(t *testing.T) {
	tests := []struct {
		name   string
		source *PaymentSource
		want   string
	}{
		{
			name:   "nil source",
			source: nil,
			want:   "",
		},
		{
			name:   "no token anywhere",
			source: &PaymentSource{Provider: PaymentSourceTypeStripe},
			want:   "",
		},
		{
			name: "token in metadata",
			source: &PaymentSource{
				Provider: PaymentSourceTypeStripe,
				Metadata: &PaymentSourceMetadata{Card: "card_meta"},
			},
			want: "card_meta",
		},
		{
			name: "token in options",
			source: &PaymentSource{
				Provider: PaymentSourceTypeAdyen,
				Options:  &PaymentSourceOptions{Card: "card_opt"},
			},
			want: "card_opt",
		},
		{
			name: "token in payment response",
			source: &PaymentSource{
				Provider:        PaymentSourceTypePaypal,
				PaymentResponse: &PaymentResponse{Source: "src_resp"},
			},
			want: "src_resp",
		},
		{
			name: "metadata wins over the other locations",
			source: &PaymentSource{
				Provider:        PaymentSourceTypeAdyen,
				Metadata:        &PaymentSourceMetadata{Card: "card_meta"},
				Options:         &PaymentSourceOptions{Card: "card_opt"},
				PaymentResponse: &PaymentResponse{Source: "src_resp"},
			},
			want: "card_meta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.source.CardToken())
		})
	}
}
