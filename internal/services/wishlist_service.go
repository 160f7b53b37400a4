package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"storefront-backend/internal/models"
)

// WishlistService handles session wishlist business logic
type WishlistService struct {
	db *sql.DB
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(db *sql.DB) *WishlistService {
	return &WishlistService{db: db}
}

// AddToWishlist saves a product to the session's wishlist. Adding a product
// that is already saved is a no-op.
func (s *WishlistService) AddToWishlist(sessionID, productID string) error {
	var exists int
	err := s.db.QueryRow("SELECT 1 FROM products WHERE id = ?", productID).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("product not found")
	}
	if err != nil {
		return fmt.Errorf("failed to look up product: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR IGNORE INTO wishlist_items (id, session_id, product_id, added_at)
		VALUES (?, ?, ?, ?)
	`, uuid.New().String(), sessionID, productID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to add to wishlist: %w", err)
	}
	return nil
}

// RemoveFromWishlist removes a product from the wishlist; removing an absent
// item is not an error
func (s *WishlistService) RemoveFromWishlist(sessionID, productID string) error {
	_, err := s.db.Exec(
		"DELETE FROM wishlist_items WHERE session_id = ? AND product_id = ?",
		sessionID, productID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove from wishlist: %w", err)
	}
	return nil
}

// GetWishlist retrieves the session's wishlist with product details
func (s *WishlistService) GetWishlist(sessionID string) ([]*models.WishlistItem, error) {
	rows, err := s.db.Query(`
		SELECT wi.id, wi.session_id, wi.product_id, wi.added_at,
			   p.id, p.name, p.brand, p.description, p.category, p.tag, p.color, p.images,
			   p.price, p.mrp, p.discount, p.in_stock, p.rating, p.review_count,
			   p.created_at, p.updated_at
		FROM wishlist_items wi
		INNER JOIN products p ON wi.product_id = p.id
		WHERE wi.session_id = ?
		ORDER BY wi.added_at, wi.rowid
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wishlist: %w", err)
	}
	defer rows.Close()

	var items []*models.WishlistItem
	for rows.Next() {
		var item models.WishlistItem
		var product models.Product
		var images string

		err := rows.Scan(
			&item.ID, &item.SessionID, &item.ProductID, &item.AddedAt,
			&product.ID, &product.Name, &product.Brand, &product.Description,
			&product.Category, &product.Tag, &product.Color, &images,
			&product.Price, &product.MRP, &product.Discount, &product.InStock,
			&product.Rating, &product.ReviewCount, &product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			continue
		}

		if err := product.SetImagesFromJSON(images); err != nil {
			product.Images = []string{}
		}
		item.Product = &product
		items = append(items, &item)
	}

	return items, nil
}
