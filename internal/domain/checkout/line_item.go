package checkout

// LineItemType classifies an order line item by the resource it points to.
type LineItemType string

const (
	LineItemTypeSKU        LineItemType = "skus"
	LineItemTypeBundle     LineItemType = "bundles"
	LineItemTypeGiftCard   LineItemType = "gift_cards"
	LineItemTypeShipment   LineItemType = "shipments"
	LineItemTypePaymentMethod LineItemType = "payment_methods"
	LineItemTypePromotion  LineItemType = "promotions"
	LineItemTypeAdjustment LineItemType = "adjustments"
)

// shippableLineItemTypes is the allow-list of item types that produce a
// physical shipment.
var shippableLineItemTypes = map[LineItemType]struct{}{
	LineItemTypeSKU:    {},
	LineItemTypeBundle: {},
}

// LineItem is one order line with the item attributes the shipment check
// needs.
type LineItem struct {
	ID       string
	ItemType LineItemType
	Quantity int
	// DoNotShip marks items that never ship even when their type is
	// shippable (digital SKUs).
	DoNotShip bool
}

// Shippable reports whether this line item requires physical shipment.
func (li LineItem) Shippable() bool {
	if _, ok := shippableLineItemTypes[li.ItemType]; !ok {
		return false
	}
	return !li.DoNotShip
}

// ShipmentRequired reports whether at least one line item requires physical
// shipment. An absent line-item list is a legitimate empty order, not an
// error, and needs no shipment.
func ShipmentRequired(lineItems []LineItem) bool {
	for _, li := range lineItems {
		if li.Shippable() {
			return true
		}
	}
	return false
}
