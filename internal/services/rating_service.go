package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"storefront-backend/internal/models"
)

// RatingService handles user-submitted star ratings. It aggregates only
// user records; seeded rating statistics are blended by callers so this
// service stays unaware of them.
type RatingService struct {
	db *sql.DB
}

// NewRatingService creates a new rating service
func NewRatingService(db *sql.DB) *RatingService {
	return &RatingService{db: db}
}

// AddRating appends a new rating record. No de-duplication: repeat
// submissions each count separately.
func (s *RatingService) AddRating(productID string, rating int) (*models.Rating, error) {
	record := &models.Rating{
		ID:        uuid.New().String(),
		ProductID: productID,
		Rating:    rating,
		CreatedAt: time.Now(),
	}
	if !record.IsValid() {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	var exists int
	err := s.db.QueryRow("SELECT 1 FROM products WHERE id = ?", productID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO ratings (id, product_id, rating, created_at) VALUES (?, ?, ?, ?)",
		record.ID, record.ProductID, record.Rating, record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add rating: %w", err)
	}

	return record, nil
}

// GetRatingsForProduct returns all rating records for a product
func (s *RatingService) GetRatingsForProduct(productID string) ([]*models.Rating, error) {
	rows, err := s.db.Query(
		"SELECT id, product_id, rating, created_at FROM ratings WHERE product_id = ? ORDER BY created_at",
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*models.Rating
	for rows.Next() {
		var r models.Rating
		if err := rows.Scan(&r.ID, &r.ProductID, &r.Rating, &r.CreatedAt); err != nil {
			continue
		}
		ratings = append(ratings, &r)
	}

	return ratings, nil
}

// GetProductRatingSummary returns the average and count over user-submitted
// records only
func (s *RatingService) GetProductRatingSummary(productID string) (models.RatingSummary, error) {
	var summary models.RatingSummary
	err := s.db.QueryRow(
		"SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM ratings WHERE product_id = ?",
		productID,
	).Scan(&summary.Average, &summary.Count)
	if err != nil {
		return models.RatingSummary{}, fmt.Errorf("failed to summarize ratings: %w", err)
	}
	return summary, nil
}
