package models

// Quantity bounds for a single cart line.
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Shipping rule: orders at or above the threshold ship free, everything
// else pays the flat fee. Amounts are whole rupiah.
const (
	FreeShippingThreshold int64 = 200000
	FlatShippingFee       int64 = 15000
)

// LineItem is one product entry in the shopping cart, or a snapshotted
// entry inside a placed order.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity"`
}

// CartTotals holds the derived monetary figures for a cart.
type CartTotals struct {
	Subtotal  int64 `json:"subtotal"`
	Shipping  int64 `json:"shipping"`
	Total     int64 `json:"total"`
	ItemCount int   `json:"item_count"`
}

// ClampQuantity forces a quantity into the [MinQuantity, MaxQuantity]
// range. Out-of-range values are clamped rather than rejected.
func ClampQuantity(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}

// ComputeTotals derives subtotal, shipping, total and item count from a
// list of line items. It is a pure function of its input.
func ComputeTotals(items []LineItem) CartTotals {
	var totals CartTotals
	for _, item := range items {
		totals.Subtotal += item.Price * int64(item.Quantity)
		totals.ItemCount += item.Quantity
	}
	if len(items) > 0 && totals.Subtotal < FreeShippingThreshold {
		totals.Shipping = FlatShippingFee
	}
	totals.Total = totals.Subtotal + totals.Shipping
	return totals
}

// CopyItems returns a deep copy of a line-item list, so order snapshots
// stay untouched by later cart mutations.
func CopyItems(items []LineItem) []LineItem {
	copied := make([]LineItem, len(items))
	copy(copied, items)
	return copied
}
