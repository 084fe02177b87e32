package handler

import (
	checkoutapp "github.com/commercekit/checkout/internal/application/checkout"
	"github.com/commercekit/checkout/internal/domain/checkout"
	"github.com/commercekit/checkout/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler handles checkout-related API endpoints
type CheckoutHandler struct {
	BaseHandler
	service *checkoutapp.Service
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(service *checkoutapp.Service) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
	}
}

// SelectShippingMethodRequest is the body for a manual shipping-method choice
type SelectShippingMethodRequest struct {
	ShippingMethodID   string `json:"shippingMethodId" binding:"required,resourceid"`
	ShippingMethodName string `json:"shippingMethodName" binding:"omitempty,max=200"`
}

// GetSettings returns the full derived checkout settings for the order.
func (h *CheckoutHandler) GetSettings(c *gin.Context) {
	orderID := c.Param("orderId")

	settings, err := h.service.Settings(c.Request.Context(), orderID)
	if err != nil {
		logger.GetGinLogger(c).Warn("settings derivation failed",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		h.HandleError(c, err)
		return
	}

	h.Success(c, settings)
}

// AssignDefaultAddress applies the best-effort default-address assignment and
// returns the resulting patch. An empty patch (applied=false) is a success:
// the preconditions simply did not hold.
func (h *CheckoutHandler) AssignDefaultAddress(c *gin.Context) {
	orderID := c.Param("orderId")
	ctx := c.Request.Context()

	order, err := h.service.FetchOrder(ctx, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	patch := h.service.CheckAndSetDefaultAddressForOrder(ctx, order)
	h.Success(c, patch)
}

// AutoAssignShippingMethods assigns the only available shipping method to all
// shipments, when exactly one method exists and the order has addresses.
func (h *CheckoutHandler) AutoAssignShippingMethods(c *gin.Context) {
	orderID := c.Param("orderId")
	ctx := c.Request.Context()

	order, err := h.service.FetchOrder(ctx, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	hasAddresses := order.BillingAddress != nil && order.ShippingAddress != nil
	patch, err := h.service.SetAutomatedShippingMethods(ctx, order, hasAddresses)
	if err != nil {
		logger.GetGinLogger(c).Warn("automated shipping method assignment failed",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		h.HandleError(c, err)
		return
	}

	h.Success(c, patch)
}

// SelectShippingMethod persists a manual shipping-method choice for one
// shipment and returns the recomputed delivery state.
func (h *CheckoutHandler) SelectShippingMethod(c *gin.Context) {
	orderID := c.Param("orderId")
	shipmentID := c.Param("shipmentId")
	ctx := c.Request.Context()

	var req SelectShippingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.service.FetchOrder(ctx, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	state, err := h.service.SelectShippingMethod(ctx, order, checkout.MethodSelection{
		ShipmentID: shipmentID,
		ShippingMethod: checkout.ShippingMethod{
			ID:   req.ShippingMethodID,
			Name: req.ShippingMethodName,
		},
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, state)
}
