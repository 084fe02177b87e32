package commerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/checkout/internal/domain/checkout"
)

// ---------------------------------------------------------------------------
// Config Tests
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{
			name:    "valid config",
			config:  &Config{BaseURL: "https://store.commerce.test", AccessToken: "tok_123"},
			wantErr: nil,
		},
		{
			name:    "missing base URL",
			config:  &Config{AccessToken: "tok_123"},
			wantErr: ErrConfigMissingBaseURL,
		},
		{
			name:    "missing access token",
			config:  &Config{BaseURL: "https://store.commerce.test"},
			wantErr: ErrConfigMissingAccessToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_Validate_AppliesTimeoutDefault(t *testing.T) {
	config := &Config{BaseURL: "https://store.commerce.test", AccessToken: "tok_123"}
	require.NoError(t, config.Validate())
	assert.Equal(t, 30, config.TimeoutSeconds)
}

// ---------------------------------------------------------------------------
// Client Tests
// ---------------------------------------------------------------------------

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewAPIClient(NewConfig(server.URL, "tok_test"))
	require.NoError(t, err)
	return client
}

func TestRetrieveOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/orders/ord_1", r.URL.Path)
		assert.Equal(t, "Bearer tok_test", r.Header.Get("Authorization"))
		assert.Contains(t, r.URL.Query().Get("include"), "customer.customer_addresses.address")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":                            "ord_1",
			"guest":                         false,
			"customer_email":                "jane@example.com",
			"status":                        "pending",
			"language_code":                 "en",
			"shipping_country_code_lock":    "IT",
			"tax_included":                  true,
			"requires_billing_info":         true,
			"total_amount_with_taxes_float": 99.90,
			"return_url":                    "https://store.example.com",
			"billing_address": map[string]any{
				"id": "addr_b", "reference": "addr_b", "country_code": "IT", "name": "Jane Smith",
			},
			"shipments": []map[string]any{
				{"id": "sh_1", "shipping_method": map[string]any{"id": "sm_1", "name": "Standard"}},
				{"id": "sh_2"},
			},
			"payment_method": map[string]any{
				"id": "pm_1", "name": "Stripe", "payment_source_type": "stripe_payments",
			},
			"payment_source": map[string]any{
				"id": "ps_1", "type": "stripe_payments",
				"metadata": map[string]any{"card": "card_123"},
			},
			"customer": map[string]any{
				"id": "cust_1", "email": "jane@example.com",
				"customer_addresses": []map[string]any{
					{"id": "ca_1", "address": map[string]any{"id": "addr_b", "reference": "addr_b", "country_code": "IT", "name": "Jane Smith"}},
				},
			},
		})
	})

	order, err := client.RetrieveOrder(context.Background(), "ord_1")
	require.NoError(t, err)

	assert.Equal(t, "ord_1", order.ID)
	assert.Equal(t, checkout.OrderStatusPending, order.Status)
	assert.Equal(t, "IT", order.ShippingCountryCodeLock)
	assert.Equal(t, "99.9", order.TotalAmountWithTaxes.String())
	require.NotNil(t, order.BillingAddress)
	assert.Nil(t, order.ShippingAddress)
	require.Len(t, order.Shipments, 2)
	require.NotNil(t, order.Shipments[0].ShippingMethod)
	assert.Equal(t, "Standard", order.Shipments[0].ShippingMethod.Name)
	assert.Nil(t, order.Shipments[1].ShippingMethod)
	require.NotNil(t, order.PaymentMethod)
	assert.Equal(t, checkout.PaymentSourceTypeStripe, order.PaymentMethod.PaymentSourceType)
	assert.Equal(t, "card_123", order.PaymentSource.CardToken())
	require.NotNil(t, order.Customer)
	require.Len(t, order.Customer.CustomerAddresses, 1)
}

func TestRetrieveOrder_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.RetrieveOrder(context.Background(), "ord_missing")
	assert.ErrorIs(t, err, checkout.ErrOrderNotFound)
}

func TestRetrieveOrder_PlatformError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(apiErrorResponse{
			Errors: []apiErrorDetail{{Code: "VALIDATION_ERROR", Detail: "status not allowed"}},
		})
	})

	_, err := client.RetrieveOrder(context.Background(), "ord_1")
	require.ErrorIs(t, err, checkout.ErrPlatformRequestFailed)
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
}

func TestRetrieveOrder_InvalidResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.RetrieveOrder(context.Background(), "ord_1")
	assert.ErrorIs(t, err, checkout.ErrPlatformInvalidResponse)
}

func TestRetrieveOrderLineItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/ord_1/line_items", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"line_items": []map[string]any{
				{"id": "li_1", "item_type": "skus", "quantity": 2},
				{"id": "li_2", "item_type": "skus", "item": map[string]any{"do_not_ship": true}},
				{"id": "li_3", "item_type": "gift_cards"},
			},
		})
	})

	lineItems, err := client.RetrieveOrderLineItems(context.Background(), "ord_1")
	require.NoError(t, err)
	require.Len(t, lineItems, 3)

	assert.True(t, lineItems[0].Shippable())
	assert.False(t, lineItems[1].Shippable())
	assert.False(t, lineItems[2].Shippable())
}

func TestUpdateOrder_SendsCloneIDs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/orders/ord_1", r.URL.Path)
		assert.Equal(t, "billing_address,shipping_address", r.URL.Query().Get("include"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "addr_1", payload["_billing_address_clone_id"])
		assert.Equal(t, "addr_1", payload["_shipping_address_clone_id"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "ord_1",
			"billing_address":  map[string]any{"id": "addr_b2", "reference": "addr_1"},
			"shipping_address": map[string]any{"id": "addr_s2", "reference": "addr_1"},
		})
	})

	order, err := client.UpdateOrder(context.Background(), checkout.OrderUpdate{
		ID:                     "ord_1",
		BillingAddressCloneID:  "addr_1",
		ShippingAddressCloneID: "addr_1",
	})
	require.NoError(t, err)
	require.NotNil(t, order.BillingAddress)
	require.NotNil(t, order.ShippingAddress)
	assert.Equal(t, "addr_1", order.BillingAddress.Reference)
}

func TestUpdateAddress(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/addresses/addr_1", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "addr_1", payload["reference"])

		_ = json.NewEncoder(w).Encode(map[string]any{"id": "addr_1", "reference": "addr_1"})
	})

	err := client.UpdateAddress(context.Background(), checkout.AddressUpdate{ID: "addr_1", Reference: "addr_1"})
	require.NoError(t, err)
}

func TestUpdateShipmentShippingMethod(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/shipments/sh_1", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "sm_1", payload["shipping_method_id"])

		_ = json.NewEncoder(w).Encode(map[string]any{"id": "sh_1"})
	})

	err := client.UpdateShipmentShippingMethod(context.Background(), "sh_1", "sm_1")
	require.NoError(t, err)
}

func TestUpdateShipmentShippingMethod_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.UpdateShipmentShippingMethod(context.Background(), "sh_missing", "sm_1")
	assert.ErrorIs(t, err, checkout.ErrShipmentNotFound)
}

func TestListShippingMethods(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/shipping_methods", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"shipping_methods": []map[string]any{
				{"id": "sm_1", "name": "Standard"},
				{"id": "sm_2", "name": "Express"},
			},
		})
	})

	methods, err := client.ListShippingMethods(context.Background())
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, checkout.ShippingMethod{ID: "sm_1", Name: "Standard"}, methods[0])
}

func TestDoRequest_PlatformUnavailable(t *testing.T) {
	client, err := NewAPIClient(NewConfig("http://127.0.0.1:1", "tok_test"))
	require.NoError(t, err)

	_, err = client.ListShippingMethods(context.Background())
	assert.ErrorIs(t, err, checkout.ErrPlatformUnavailable)
}
