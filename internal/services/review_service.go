package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"storefront-backend/internal/models"
	"storefront-backend/internal/utils"
)

// ReviewService handles written reviews and seeded testimonials
type ReviewService struct {
	db *sql.DB
}

// NewReviewService creates a new review service
func NewReviewService(db *sql.DB) *ReviewService {
	return &ReviewService{db: db}
}

// GetTestimonials returns seeded storefront testimonials
func (s *ReviewService) GetTestimonials() ([]*models.Testimonial, error) {
	rows, err := s.db.Query("SELECT id, author, role, quote FROM testimonials ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []*models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.Role, &t.Quote); err != nil {
			continue
		}
		testimonials = append(testimonials, &t)
	}

	return testimonials, nil
}

// GetReviews returns reviews for a product, newest first
func (s *ReviewService) GetReviews(productID string) ([]*models.Review, error) {
	rows, err := s.db.Query(`
		SELECT id, product_id, author, text, rating, created_at
		FROM reviews WHERE product_id = ?
		ORDER BY created_at DESC
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.ProductID, &r.Author, &r.Text, &r.Rating, &r.CreatedAt); err != nil {
			continue
		}
		reviews = append(reviews, &r)
	}

	return reviews, nil
}

// AddReview stores a written review for a product
func (s *ReviewService) AddReview(productID string, creation *models.ReviewCreation) (*models.Review, error) {
	var exists int
	err := s.db.QueryRow("SELECT 1 FROM products WHERE id = ?", productID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}

	review := &models.Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		Author:    utils.SanitizeString(creation.Author),
		Text:      utils.SanitizeString(creation.Text),
		Rating:    creation.Rating,
		CreatedAt: time.Now(),
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if review.Author == "" || review.Text == "" {
		return nil, fmt.Errorf("author and text are required")
	}

	_, err = s.db.Exec(`
		INSERT INTO reviews (id, product_id, author, text, rating, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, review.ID, review.ProductID, review.Author, review.Text, review.Rating, review.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}

	return review, nil
}
