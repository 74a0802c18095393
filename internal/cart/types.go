package cart

import "github.com/shopspring/decimal"

// LineItem is one denormalized cart row. Price is captured in minor units
// at add time so later catalog edits never reprice an existing cart.
type LineItem struct {
	ProductID  int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price"`
	Image      string `json:"image"`
	Quantity   int64  `json:"quantity"`
}

// Cart wraps the ordered line items for one cart slot.
type Cart struct {
	Items []LineItem `json:"items"`
}

// TotalItems sums quantities across all lines.
func (c Cart) TotalItems() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// SubtotalCents is the quantity-weighted sum of line prices.
func (c Cart) SubtotalCents() int64 {
	var subtotal int64
	for _, item := range c.Items {
		subtotal += item.PriceCents * item.Quantity
	}
	return subtotal
}

// indexOf returns the position of the line holding productID, or -1.
func (c Cart) indexOf(productID int64) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// Summary is the priced projection of a cart. Shipping is a flat
// charge applied regardless of cart contents.
type Summary struct {
	Items         []LineItem `json:"items"`
	TotalItems    int64      `json:"total_items"`
	SubtotalCents int64      `json:"subtotal_cents"`
	ShippingCents int64      `json:"shipping_cents"`
	TotalCents    int64      `json:"total_cents"`
	Subtotal      string     `json:"subtotal"`
	Shipping      string     `json:"shipping"`
	Total         string     `json:"total"`
}

// Summarize prices the cart with the given flat shipping charge.
func Summarize(c Cart, shippingCents int64) Summary {
	subtotal := c.SubtotalCents()
	shipping := shippingCents
	total := subtotal + shipping

	items := c.Items
	if items == nil {
		items = []LineItem{}
	}

	return Summary{
		Items:         items,
		TotalItems:    c.TotalItems(),
		SubtotalCents: subtotal,
		ShippingCents: shipping,
		TotalCents:    total,
		Subtotal:      formatCents(subtotal),
		Shipping:      formatCents(shipping),
		Total:         formatCents(total),
	}
}

func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
