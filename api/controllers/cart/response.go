package cart

import (
	cartsvc "github.com/shopvista/storefront-backend/internal/cart"
)

// CartView is the wire shape of a cart returned by mutation and fetch
// endpoints.
type CartView struct {
	Items      []cartsvc.LineItem `json:"items"`
	TotalItems int64              `json:"total_items"`
}

// CountView carries the quantity-weighted item count for badge renders.
type CountView struct {
	Count int64 `json:"count"`
}

func newCartView(c cartsvc.Cart) CartView {
	items := c.Items
	if items == nil {
		items = []cartsvc.LineItem{}
	}
	return CartView{
		Items:      items,
		TotalItems: c.TotalItems(),
	}
}
