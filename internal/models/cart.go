package models

import "time"

// CartItem represents a line item in a session's cart. Identity within a
// cart is the product id: adding the same product again increments the
// quantity instead of creating a second row.
type CartItem struct {
	ID        string    `json:"id" db:"id"`
	SessionID string    `json:"sessionId" db:"session_id"`
	ProductID string    `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     float64   `json:"price" db:"price"`
	AddedAt   time.Time `json:"addedAt" db:"added_at"`

	// Joined data (populated when needed)
	Product *Product `json:"product,omitempty"`
}

// TotalPrice returns the total price for the cart item
func (ci *CartItem) TotalPrice() float64 {
	return ci.Price * float64(ci.Quantity)
}

// CartTotal returns the sum of price x quantity over the given items.
// The total is always derived, never stored.
func CartTotal(items []*CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.TotalPrice()
	}
	return total
}

// WishlistItem represents a product saved to a session's wishlist
type WishlistItem struct {
	ID        string    `json:"id" db:"id"`
	SessionID string    `json:"sessionId" db:"session_id"`
	ProductID string    `json:"productId" db:"product_id"`
	AddedAt   time.Time `json:"addedAt" db:"added_at"`

	// Joined data (populated when needed)
	Product *Product `json:"product,omitempty"`
}
