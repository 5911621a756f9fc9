package model

// CartItem is one line of a cart. The product is a snapshot taken when it
// was first added.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is price times quantity
func (i CartItem) LineTotal() int {
	return i.Product.Price * i.Quantity
}
