package checkout

import "errors"

// Errors returned by the commerce platform port and its adapters.
var (
	ErrOrderNotFound           = errors.New("checkout: order not found")
	ErrShipmentNotFound        = errors.New("checkout: shipment not found")
	ErrPlatformNotConfigured   = errors.New("checkout: commerce platform not configured")
	ErrPlatformUnavailable     = errors.New("checkout: commerce platform unavailable")
	ErrPlatformRequestFailed   = errors.New("checkout: commerce platform request failed")
	ErrPlatformInvalidResponse = errors.New("checkout: invalid commerce platform response")
)
