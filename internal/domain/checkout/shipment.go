package checkout

// ShippingMethod is a delivery option offered by the commerce platform.
type ShippingMethod struct {
	ID   string
	Name string
}

// Shipment is a physical delivery attached to the order, with the shipping
// method chosen for it, if any.
type Shipment struct {
	ID             string
	ShippingMethod *ShippingMethod
}

// ShipmentSelection is the per-shipment view of the chosen shipping method
// consumed by the delivery step. An empty ShippingMethodID means no method
// has been chosen for that shipment yet.
type ShipmentSelection struct {
	ShipmentID         string `json:"shipmentId"`
	ShippingMethodID   string `json:"shippingMethodId"`
	ShippingMethodName string `json:"shippingMethodName"`
}

// MethodSelection is a user's shipping-method choice for one shipment.
type MethodSelection struct {
	ShipmentID     string
	ShippingMethod ShippingMethod
}

// PrepareShipments projects the order's shipments into selection entries.
func PrepareShipments(shipments []Shipment) []ShipmentSelection {
	selections := make([]ShipmentSelection, 0, len(shipments))
	for _, s := range shipments {
		sel := ShipmentSelection{ShipmentID: s.ID}
		if s.ShippingMethod != nil {
			sel.ShippingMethodID = s.ShippingMethod.ID
			sel.ShippingMethodName = s.ShippingMethod.Name
		}
		selections = append(selections, sel)
	}
	return selections
}

// HasShippingMethodSet reports whether every shipment has a shipping method.
// An empty list means there is nothing to deliver yet, which counts as not
// set.
func HasShippingMethodSet(selections []ShipmentSelection) bool {
	if len(selections) == 0 {
		return false
	}
	for _, sel := range selections {
		if sel.ShippingMethodID == "" {
			return false
		}
	}
	return true
}

// ShipmentsState is the delivery-step slice of the derived settings.
type ShipmentsState struct {
	Shipments         []ShipmentSelection `json:"shipments"`
	HasShippingMethod bool                `json:"hasShippingMethod"`
}

// CalculateSelectedShipments applies an optional shipping-method choice to
// the selection list and recomputes the completeness flag. Entries other
// than the chosen shipment pass through unchanged; the input slice is not
// mutated. It is used both to seed the initial delivery state and to apply
// a manual selection for one shipment.
func CalculateSelectedShipments(selections []ShipmentSelection, payload *MethodSelection) ShipmentsState {
	updated := make([]ShipmentSelection, len(selections))
	for i, sel := range selections {
		if payload != nil && sel.ShipmentID == payload.ShipmentID {
			sel.ShippingMethodID = payload.ShippingMethod.ID
			sel.ShippingMethodName = payload.ShippingMethod.Name
		}
		updated[i] = sel
	}
	return ShipmentsState{
		Shipments:         updated,
		HasShippingMethod: HasShippingMethodSet(updated),
	}
}
