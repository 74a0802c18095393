package cart

// AddItemRequest identifies the catalog product to add to the cart.
type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
}

// SetQuantityRequest replaces the quantity of an existing cart line.
// A pointer keeps zero distinguishable from an absent field; values
// below one remove the line.
type SetQuantityRequest struct {
	Quantity *int64 `json:"quantity" validate:"required"`
}
