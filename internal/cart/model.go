// Package cart holds the client-side cart and order model: totals
// computation, quantity mutation against the backend, and order-history
// filtering and summary shaping.
package cart

import "time"

// TaxRate is the flat demo sales-tax rate applied at checkout.
const TaxRate = 0.08

type Item struct {
	ProductID string  `json:"productId"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// LineTotal is the exact (unrounded) price*qty for this line.
func (it Item) LineTotal() float64 {
	return it.Price * float64(it.Qty)
}

// Cart is a transient copy of the backend cart, refetched before each render.
type Cart struct {
	Items    []Item  `json:"items"`
	Subtotal float64 `json:"subtotal"`
}

// ItemCount is the number of distinct lines, used for the header badge.
func (c Cart) ItemCount() int { return len(c.Items) }

// UnitCount is the summed quantity across lines.
func (c Cart) UnitCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Qty
	}
	return n
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// DisplayName prefers the backend-supplied name, falling back to the
// product id (the demo backend identifies products by display name).
func (it OrderItem) DisplayName() string {
	if it.Name != "" {
		return it.Name
	}
	if it.ProductID != "" {
		return it.ProductID
	}
	return "Item"
}

// Order is immutable once created; the client only reads it.
type Order struct {
	ID        string      `json:"id"`
	Status    string      `json:"status,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	Items     []OrderItem `json:"items"`
	Subtotal  float64     `json:"subtotal,omitempty"`
	Tax       float64     `json:"tax,omitempty"`
	Total     *float64    `json:"total,omitempty"`
}

// EffectiveTotal prefers the backend-authoritative total when present and
// otherwise derives subtotal + tax.
func (o Order) EffectiveTotal() float64 {
	if o.Total != nil {
		return *o.Total
	}
	return o.Subtotal + o.Tax
}
