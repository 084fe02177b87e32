package checkout

// Address is a billing or shipping address attached to an order, or the
// address wrapped by an address-book entry. Reference is an external
// correlation key: cloned addresses carry the reference of the address they
// were cloned from, which is how the same logical address is recognized
// across resources.
type Address struct {
	ID          string
	Reference   string
	CountryCode string
	Name        string
}

// IsNewAddress reports whether the given order address is not yet part of the
// customer's address book. Guests never have a book, so their addresses are
// always new.
//
// For non-guest orders the address is looked up in the book by reference.
// A multi-entry book can decisively indicate novelty only when an address is
// actually supplied: an absent address against a multi-entry book means the
// customer simply has not picked one yet, not that a new one is being entered.
func IsNewAddress(address *Address, customerAddresses []CustomerAddress, isGuest bool) bool {
	if isGuest {
		return true
	}

	found := false
	if address != nil {
		for _, ca := range customerAddresses {
			if ca.Address != nil && ca.Address.Reference == address.Reference {
				found = true
				break
			}
		}
	}

	if !found && len(customerAddresses) > 1 {
		return address != nil
	}
	return !found
}

// BillingSameAsShipping reports whether the billing and shipping addresses
// are the same logical address. Two addresses match when their references
// are equal and set, or when their display names are equal.
//
// When only one of the two is present the result is asymmetric: a
// billing-only order counts as "same" (shipping not collected yet), a
// shipping-only order does not.
func BillingSameAsShipping(billing, shipping *Address) bool {
	switch {
	case billing != nil && shipping != nil:
		if shipping.Reference == billing.Reference && shipping.Reference != "" {
			return true
		}
		return shipping.Name == billing.Name
	case shipping == nil && billing != nil:
		return true
	case billing == nil && shipping != nil:
		return false
	default:
		return true
	}
}
