package checkout

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/commercekit/checkout/internal/domain/checkout"
)

// Service orchestrates the checkout flow against the commerce platform:
// fetching the order aggregate, deriving the view state, and applying the
// few mutating conveniences (default address, automated shipping methods).
type Service struct {
	client checkout.Client
	prefs  checkout.PreferenceStore
	logger *zap.Logger
}

// NewService creates a checkout service.
func NewService(client checkout.Client, prefs checkout.PreferenceStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		prefs:  prefs,
		logger: logger,
	}
}

// FetchOrder retrieves the order aggregate with all related resources the
// checkout flow reads.
func (s *Service) FetchOrder(ctx context.Context, orderID string) (*checkout.Order, error) {
	return s.client.RetrieveOrder(ctx, orderID)
}

// CheckIfShipmentRequired reports whether the order contains at least one
// line item that needs physical shipment. An order without line items needs
// none.
func (s *Service) CheckIfShipmentRequired(ctx context.Context, orderID string) (bool, error) {
	lineItems, err := s.client.RetrieveOrderLineItems(ctx, orderID)
	if err != nil {
		return false, err
	}
	return checkout.ShipmentRequired(lineItems), nil
}

// Settings fetches the order and derives the consolidated checkout settings.
func (s *Service) Settings(ctx context.Context, orderID string) (checkout.Settings, error) {
	order, err := s.client.RetrieveOrder(ctx, orderID)
	if err != nil {
		return checkout.Settings{}, err
	}

	shipmentRequired, err := s.CheckIfShipmentRequired(ctx, orderID)
	if err != nil {
		return checkout.Settings{}, err
	}

	return checkout.CalculateSettings(order, shipmentRequired), nil
}

// CheckAndSetDefaultAddressForOrder clones the customer's only saved address
// into the order's billing and shipping slots when the order has no
// addresses yet. It applies only to non-guest orders with exactly one
// address-book entry whose country is allowed by the shipping country lock.
//
// The assignment is a best-effort convenience: any failure is logged and an
// empty patch returned, and the caller proceeds with unset addresses.
func (s *Service) CheckAndSetDefaultAddressForOrder(ctx context.Context, order *checkout.Order) checkout.AddressesPatch {
	book := order.CustomerAddresses()
	if order.Guest ||
		len(book) != 1 ||
		order.BillingAddress != nil ||
		order.ShippingAddress != nil {
		return checkout.AddressesPatch{}
	}

	address := book[0].Address
	if address == nil {
		return checkout.AddressesPatch{}
	}

	if order.ShippingCountryCodeLock != "" &&
		order.ShippingCountryCodeLock != address.CountryCode {
		return checkout.AddressesPatch{}
	}

	// Stamp the saved address with its own ID as reference so the cloned
	// addresses can be matched back to this entry. Idempotent.
	if address.ID != "" && address.Reference != address.ID {
		if err := s.client.UpdateAddress(ctx, checkout.AddressUpdate{
			ID:        address.ID,
			Reference: address.ID,
		}); err != nil {
			s.logger.Warn("default address: reference stamp failed",
				zap.String("order_id", order.ID),
				zap.String("address_id", address.ID),
				zap.Error(err),
			)
			return checkout.AddressesPatch{}
		}
	}

	updated, err := s.client.UpdateOrder(ctx, checkout.OrderUpdate{
		ID:                     order.ID,
		BillingAddressCloneID:  address.ID,
		ShippingAddressCloneID: address.ID,
	})
	if err != nil {
		s.logger.Warn("default address: clone update failed",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return checkout.AddressesPatch{}
	}

	s.clearSaveAddressFlags(ctx, order.ID)

	stamped := *address
	stamped.Reference = address.ID
	patchedBook := []checkout.CustomerAddress{{ID: book[0].ID, Address: &stamped}}

	return checkout.AddressesPatch{
		Applied:                   true,
		CustomerAddresses:         patchedBook,
		HasSameAddresses:          true,
		HasBillingAddress:         true,
		HasShippingAddress:        true,
		IsUsingNewBillingAddress:  false,
		IsUsingNewShippingAddress: false,
		BillingAddress:            updated.BillingAddress,
		ShippingAddress:           updated.ShippingAddress,
	}
}

// clearSaveAddressFlags resets the save-to-address-book preferences after a
// default address has been assigned. Failures only lose a convenience flag.
func (s *Service) clearSaveAddressFlags(ctx context.Context, orderID string) {
	for _, key := range []string{checkout.PrefSaveBillingAddress, checkout.PrefSaveShippingAddress} {
		if err := s.prefs.Set(ctx, orderID, key, "false"); err != nil {
			s.logger.Warn("default address: preference reset failed",
				zap.String("order_id", orderID),
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
}

// SetAutomatedShippingMethods assigns the only available shipping method to
// every shipment on the order. It is a no-op when the order has no addresses
// yet, or when zero or multiple candidate methods exist (the customer must
// choose, or the market is misconfigured). The per-shipment updates run
// concurrently; the first failure aborts the join and is returned, with no
// rollback of updates that already landed.
func (s *Service) SetAutomatedShippingMethods(ctx context.Context, order *checkout.Order, hasAddresses bool) (checkout.ShippingPatch, error) {
	if !hasAddresses {
		return checkout.ShippingPatch{}, nil
	}

	methods, err := s.client.ListShippingMethods(ctx)
	if err != nil {
		return checkout.ShippingPatch{}, err
	}
	if len(methods) != 1 {
		return checkout.ShippingPatch{}, nil
	}
	method := methods[0]

	g, gctx := errgroup.WithContext(ctx)
	for _, shipment := range order.Shipments {
		shipment := shipment
		g.Go(func() error {
			return s.client.UpdateShipmentShippingMethod(gctx, shipment.ID, method.ID)
		})
	}
	if err := g.Wait(); err != nil {
		return checkout.ShippingPatch{}, err
	}

	return checkout.ShippingPatch{
		Applied:            true,
		HasShippingMethod:  true,
		ShippingMethodName: method.Name,
	}, nil
}

// SelectShippingMethod persists the customer's shipping-method choice for
// one shipment and returns the recomputed delivery state.
func (s *Service) SelectShippingMethod(ctx context.Context, order *checkout.Order, selection checkout.MethodSelection) (checkout.ShipmentsState, error) {
	if err := s.client.UpdateShipmentShippingMethod(ctx, selection.ShipmentID, selection.ShippingMethod.ID); err != nil {
		return checkout.ShipmentsState{}, err
	}
	return checkout.CalculateSelectedShipments(checkout.PrepareShipments(order.Shipments), &selection), nil
}
