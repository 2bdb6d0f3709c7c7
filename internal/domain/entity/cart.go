package entity

// CartItem is a product snapshot plus a quantity, stored flat the same way
// the storefront persists it: the product fields inline with quantity
// alongside.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
