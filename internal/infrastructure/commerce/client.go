package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/commercekit/checkout/internal/domain/checkout"
)

// maxResponseSize is the maximum allowed response size from the platform (10MB)
const maxResponseSize = 10 * 1024 * 1024

// orderFields and orderInclude select the order attributes and related
// resources the checkout flow reads.
const (
	orderFields = "id,guest,shipping_country_code_lock,customer_email,status,return_url,cart_url," +
		"tax_included,requires_billing_info,total_amount_with_taxes_float,language_code"
	orderInclude = "shipping_address,billing_address,shipments,shipments.shipping_method," +
		"payment_method,payment_source,customer,customer.customer_addresses,customer.customer_addresses.address"
	lineItemInclude = "line_items,line_items.item"
)

// errNotFound marks a 404 from the platform; call sites map it to the
// resource-specific sentinel.
var errNotFound = errors.New("commerce: resource not found")

// APIClient implements checkout.Client against the commerce platform's REST
// API.
type APIClient struct {
	config     *Config
	httpClient *http.Client
}

// NewAPIClient creates a commerce platform client with the given
// configuration.
func NewAPIClient(config *Config) (*APIClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &APIClient{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// RetrieveOrder fetches the order aggregate with addresses, shipments,
// payment method/source and the customer's address book included.
func (c *APIClient) RetrieveOrder(ctx context.Context, orderID string) (*checkout.Order, error) {
	query := url.Values{}
	query.Set("fields[orders]", orderFields)
	query.Set("include", orderInclude)

	body, err := c.doRequest(ctx, http.MethodGet, "/api/orders/"+orderID, query, nil)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fmt.Errorf("%w: %s", checkout.ErrOrderNotFound, orderID)
		}
		return nil, err
	}

	var resource orderResource
	if err := json.Unmarshal(body, &resource); err != nil {
		return nil, fmt.Errorf("%w: %v", checkout.ErrPlatformInvalidResponse, err)
	}
	return resource.toDomain(), nil
}

// RetrieveOrderLineItems fetches the order's line items with the item
// attributes the shipment check needs.
func (c *APIClient) RetrieveOrderLineItems(ctx context.Context, orderID string) ([]checkout.LineItem, error) {
	query := url.Values{}
	query.Set("fields[line_items]", "item_type,item")
	query.Set("include", lineItemInclude)

	body, err := c.doRequest(ctx, http.MethodGet, "/api/orders/"+orderID+"/line_items", query, nil)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fmt.Errorf("%w: %s", checkout.ErrOrderNotFound, orderID)
		}
		return nil, err
	}

	var resp lineItemsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", checkout.ErrPlatformInvalidResponse, err)
	}

	lineItems := make([]checkout.LineItem, 0, len(resp.LineItems))
	for _, li := range resp.LineItems {
		lineItems = append(lineItems, li.toDomain())
	}
	return lineItems, nil
}

// UpdateOrder applies a partial order update and returns the order with its
// billing and shipping addresses included.
func (c *APIClient) UpdateOrder(ctx context.Context, update checkout.OrderUpdate) (*checkout.Order, error) {
	query := url.Values{}
	query.Set("include", "billing_address,shipping_address")

	payload := orderUpdateRequest{
		BillingAddressCloneID:  update.BillingAddressCloneID,
		ShippingAddressCloneID: update.ShippingAddressCloneID,
	}

	body, err := c.doRequest(ctx, http.MethodPatch, "/api/orders/"+update.ID, query, payload)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fmt.Errorf("%w: %s", checkout.ErrOrderNotFound, update.ID)
		}
		return nil, err
	}

	var resource orderResource
	if err := json.Unmarshal(body, &resource); err != nil {
		return nil, fmt.Errorf("%w: %v", checkout.ErrPlatformInvalidResponse, err)
	}
	return resource.toDomain(), nil
}

// UpdateAddress applies a partial address update.
func (c *APIClient) UpdateAddress(ctx context.Context, update checkout.AddressUpdate) error {
	_, err := c.doRequest(ctx, http.MethodPatch, "/api/addresses/"+update.ID, nil, addressUpdateRequest{
		Reference: update.Reference,
	})
	return err
}

// UpdateShipmentShippingMethod assigns a shipping method to a shipment.
func (c *APIClient) UpdateShipmentShippingMethod(ctx context.Context, shipmentID, shippingMethodID string) error {
	_, err := c.doRequest(ctx, http.MethodPatch, "/api/shipments/"+shipmentID, nil, shipmentUpdateRequest{
		ShippingMethodID: shippingMethodID,
	})
	if errors.Is(err, errNotFound) {
		return fmt.Errorf("%w: %s", checkout.ErrShipmentNotFound, shipmentID)
	}
	return err
}

// ListShippingMethods lists the shipping methods available to the market
// the access token is scoped to.
func (c *APIClient) ListShippingMethods(ctx context.Context) ([]checkout.ShippingMethod, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/shipping_methods", nil, nil)
	if err != nil {
		return nil, err
	}

	var resp shippingMethodsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", checkout.ErrPlatformInvalidResponse, err)
	}

	methods := make([]checkout.ShippingMethod, 0, len(resp.ShippingMethods))
	for _, m := range resp.ShippingMethods {
		methods = append(methods, checkout.ShippingMethod{ID: m.ID, Name: m.Name})
	}
	return methods, nil
}

// doRequest performs an HTTP request against the platform API.
func (c *APIClient) doRequest(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	endpoint := strings.TrimRight(c.config.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("commerce: failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("commerce: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", checkout.ErrPlatformUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("commerce: failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotFound
	}
	if resp.StatusCode >= 400 {
		var errResp apiErrorResponse
		if json.Unmarshal(body, &errResp) == nil && len(errResp.Errors) > 0 {
			return nil, fmt.Errorf("%w: HTTP %d: %s - %s",
				checkout.ErrPlatformRequestFailed, resp.StatusCode,
				errResp.Errors[0].Code, errResp.Errors[0].Detail)
		}
		return nil, fmt.Errorf("%w: HTTP %d", checkout.ErrPlatformRequestFailed, resp.StatusCode)
	}

	return body, nil
}

// Ensure APIClient implements the checkout.Client interface
var _ checkout.Client = (*APIClient)(nil)
