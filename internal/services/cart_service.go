package services

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"storefront-backend/internal/models"
)

// CartService handles session cart business logic
type CartService struct {
	db *sql.DB
}

// NewCartService creates a new cart service
func NewCartService(db *sql.DB) *CartService {
	return &CartService{db: db}
}

// AddToCart adds a product to the session's cart. If a line item for the
// same product already exists its quantity is incremented; otherwise a new
// line item is created with the product's current price as snapshot.
func (s *CartService) AddToCart(sessionID, productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	var price float64
	var inStock bool
	err := s.db.QueryRow("SELECT price, in_stock FROM products WHERE id = ?", productID).Scan(&price, &inStock)
	if err == sql.ErrNoRows {
		return fmt.Errorf("product not found")
	}
	if err != nil {
		return fmt.Errorf("failed to look up product: %w", err)
	}
	if !inStock {
		return fmt.Errorf("product is out of stock")
	}

	var existingID string
	err = s.db.QueryRow(
		"SELECT id FROM cart_items WHERE session_id = ? AND product_id = ?",
		sessionID, productID,
	).Scan(&existingID)

	if err == sql.ErrNoRows {
		_, err = s.db.Exec(`
			INSERT INTO cart_items (id, session_id, product_id, quantity, price, added_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), sessionID, productID, quantity, price, time.Now())
		if err != nil {
			return fmt.Errorf("failed to add to cart: %w", err)
		}
	} else if err == nil {
		_, err = s.db.Exec(
			"UPDATE cart_items SET quantity = quantity + ? WHERE id = ?",
			quantity, existingID,
		)
		if err != nil {
			return fmt.Errorf("failed to update cart item: %w", err)
		}
	} else {
		return fmt.Errorf("failed to check cart: %w", err)
	}

	return nil
}

// UpdateQuantity sets a line item's quantity directly (not additive). A
// quantity below 1 is equivalent to removing the item.
func (s *CartService) UpdateQuantity(sessionID, productID string, quantity int) error {
	if quantity < 1 {
		return s.RemoveFromCart(sessionID, productID)
	}

	_, err := s.db.Exec(
		"UPDATE cart_items SET quantity = ? WHERE session_id = ? AND product_id = ?",
		quantity, sessionID, productID,
	)
	if err != nil {
		return fmt.Errorf("failed to update quantity: %w", err)
	}
	return nil
}

// RemoveFromCart deletes a line item. Removing an absent item is not an
// error.
func (s *CartService) RemoveFromCart(sessionID, productID string) error {
	_, err := s.db.Exec(
		"DELETE FROM cart_items WHERE session_id = ? AND product_id = ?",
		sessionID, productID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove from cart: %w", err)
	}
	return nil
}

// ClearCart empties the session's cart
func (s *CartService) ClearCart(sessionID string) error {
	_, err := s.db.Exec("DELETE FROM cart_items WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// GetCart retrieves the session's cart items with product details
func (s *CartService) GetCart(sessionID string) ([]*models.CartItem, error) {
	rows, err := s.db.Query(`
		SELECT ci.id, ci.session_id, ci.product_id, ci.quantity, ci.price, ci.added_at,
			   p.id, p.name, p.brand, p.description, p.category, p.tag, p.color, p.images,
			   p.price, p.mrp, p.discount, p.in_stock, p.rating, p.review_count,
			   p.created_at, p.updated_at
		FROM cart_items ci
		INNER JOIN products p ON ci.product_id = p.id
		WHERE ci.session_id = ?
		ORDER BY ci.added_at, ci.rowid
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var cartItems []*models.CartItem
	for rows.Next() {
		var item models.CartItem
		var product models.Product
		var images string

		err := rows.Scan(
			&item.ID, &item.SessionID, &item.ProductID, &item.Quantity, &item.Price, &item.AddedAt,
			&product.ID, &product.Name, &product.Brand, &product.Description,
			&product.Category, &product.Tag, &product.Color, &images,
			&product.Price, &product.MRP, &product.Discount, &product.InStock,
			&product.Rating, &product.ReviewCount, &product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			log.Printf("Warning: skipping unreadable cart row: %v", err)
			continue
		}

		if err := product.SetImagesFromJSON(images); err != nil {
			product.Images = []string{}
		}
		item.Product = &product
		cartItems = append(cartItems, &item)
	}

	return cartItems, nil
}

// CartTotal recomputes the cart total from current line items on every call
func (s *CartService) CartTotal(sessionID string) (float64, error) {
	items, err := s.GetCart(sessionID)
	if err != nil {
		return 0, err
	}
	return models.CartTotal(items), nil
}
