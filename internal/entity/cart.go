package entity

// CartItem is one line of a shopper's cart. ID is the product id as a string.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Notes    string `json:"notes,omitempty"`
	Quantity int    `json:"quantity"`
}

// CartItemInput is what a product card hands to the cart.
type CartItemInput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
	Notes string `json:"notes,omitempty"`
}

// Subtotal is price times quantity.
func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

type Cart struct {
	Items      []CartItem `json:"items"`
	TotalPrice int64      `json:"total_price"`
	TotalItems int        `json:"total_items"`
	Formatted  string     `json:"total_price_formatted"`
}
