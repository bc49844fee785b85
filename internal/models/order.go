package models

import "encoding/json"

// Order is the checkout payload. Every field is optional and kept as raw JSON,
// nothing about its shape is enforced.
type Order struct {
	Customer json.RawMessage `json:"customer,omitempty"`
	Cart     json.RawMessage `json:"cart,omitempty"`
}

// CartSummary is a best-effort view of the cart sub-object, used for logging.
type CartSummary struct {
	Items json.RawMessage `json:"items,omitempty"`
	Total *float64        `json:"total,omitempty"`
	Count *int            `json:"count,omitempty"`
}

// Summary decodes the cart sub-object. ok is false when the cart is absent
// or does not look like {items, total, count}.
func (o Order) Summary() (s CartSummary, ok bool) {
	if len(o.Cart) == 0 {
		return s, false
	}
	if err := json.Unmarshal(o.Cart, &s); err != nil {
		return CartSummary{}, false
	}
	return s, true
}

type CheckoutResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Order   json.RawMessage `json:"order"`
}
