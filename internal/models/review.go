package models

import "time"

// Review represents a written product review, seeded or user-submitted.
// Distinct from Rating: reviews carry text and an author, and do not feed
// the blended rating average.
type Review struct {
	ID        string    `json:"id" db:"id"`
	ProductID string    `json:"productId" db:"product_id"`
	Author    string    `json:"author" db:"author"`
	Text      string    `json:"text" db:"text"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ReviewCreation represents data for submitting a review
type ReviewCreation struct {
	Author string `json:"author" binding:"required"`
	Text   string `json:"text" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
}

// Testimonial represents seeded marketing copy shown on the storefront
type Testimonial struct {
	ID     string `json:"id" db:"id"`
	Author string `json:"author" db:"author"`
	Role   string `json:"role" db:"role"`
	Quote  string `json:"quote" db:"quote"`
}
