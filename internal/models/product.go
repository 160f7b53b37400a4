package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Product represents a product in the catalog
type Product struct {
	ID          string   `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Brand       string   `json:"brand" db:"brand"`
	Description string   `json:"description" db:"description"`
	Category    string   `json:"category" db:"category"`
	Tag         string   `json:"tag" db:"tag"`
	Color       string   `json:"color" db:"color"`
	Images      []string `json:"images" db:"images"`
	Price       float64  `json:"price" db:"price"`
	MRP         float64  `json:"mrp" db:"mrp"`
	Discount    string   `json:"discount" db:"discount"`
	InStock     bool     `json:"inStock" db:"in_stock"`

	// Seeded quality signal, blended with user-submitted ratings for display
	Rating      float64 `json:"rating" db:"rating"`
	ReviewCount int     `json:"reviewCount" db:"review_count"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductCreation represents data for creating a new product
type ProductCreation struct {
	Name        string   `json:"name" binding:"required"`
	Brand       string   `json:"brand"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Tag         string   `json:"tag"`
	Color       string   `json:"color"`
	Images      []string `json:"images"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	MRP         float64  `json:"mrp"`
	Discount    string   `json:"discount"`
	InStock     bool     `json:"inStock"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
}

// ProductUpdate represents data for updating a product
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Tag         *string  `json:"tag,omitempty"`
	Color       *string  `json:"color,omitempty"`
	Images      []string `json:"images,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	MRP         *float64 `json:"mrp,omitempty"`
	Discount    *string  `json:"discount,omitempty"`
	InStock     *bool    `json:"inStock,omitempty"`
}

// MatchesQuery reports whether the product matches a free-text search query.
// An empty query matches everything; otherwise the lowercased query must be a
// substring of the lowercased name or description.
func (p *Product) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// MatchesCategory reports whether the product matches a category filter.
// "All" (or empty) passes everything.
func (p *Product) MatchesCategory(category string) bool {
	return category == "" || category == "All" || p.Category == category
}

// MatchesTag reports whether the product matches a tag filter
func (p *Product) MatchesTag(tag string) bool {
	return tag == "" || tag == "All" || p.Tag == tag
}

// DiscountPercent returns the discount relative to MRP, 0 when MRP is unset
func (p *Product) DiscountPercent() float64 {
	if p.MRP <= 0 || p.Price >= p.MRP {
		return 0
	}
	return (p.MRP - p.Price) / p.MRP * 100
}

// GetImagesJSON returns images as JSON string for database storage
func (p *Product) GetImagesJSON() (string, error) {
	if len(p.Images) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(p.Images)
	return string(data), err
}

// SetImagesFromJSON sets images from JSON string
func (p *Product) SetImagesFromJSON(imagesJSON string) error {
	if imagesJSON == "" {
		p.Images = []string{}
		return nil
	}
	return json.Unmarshal([]byte(imagesJSON), &p.Images)
}
