package services

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"storefront-backend/internal/models"
	"storefront-backend/internal/utils"
)

// CatalogService handles product catalog business logic
type CatalogService struct {
	db *sql.DB
}

// NewCatalogService creates a new catalog service
func NewCatalogService(db *sql.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ProductFilter narrows the catalog for listing. Category and Tag accept
// "All" (or empty) as pass-through; Query is a case-insensitive substring
// match over name and description.
type ProductFilter struct {
	Category string
	Tag      string
	Query    string
	Page     int
	PageSize int
}

// ProductPage is one visible page of the filtered catalog
type ProductPage struct {
	Products   []*models.Product `json:"products"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	Total      int               `json:"total"`
	TotalPages int               `json:"totalPages"`
}

// FilterProducts applies the category, tag and free-text filters in that
// order. Each is a pure predicate; an empty result is a valid empty page,
// not an error.
func FilterProducts(products []*models.Product, category, tag, query string) []*models.Product {
	filtered := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if !p.MatchesCategory(category) {
			continue
		}
		if !p.MatchesTag(tag) {
			continue
		}
		if !p.MatchesQuery(query) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// ListProducts returns the visible page of the filtered catalog plus derived
// pagination metadata
func (s *CatalogService) ListProducts(filter ProductFilter) (*ProductPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 4
	}

	products, err := s.getAllProducts()
	if err != nil {
		return nil, err
	}

	filtered := FilterProducts(products, filter.Category, filter.Tag, filter.Query)

	return &ProductPage{
		Products:   utils.Paginate(filtered, filter.Page, filter.PageSize),
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		Total:      len(filtered),
		TotalPages: utils.TotalPages(len(filtered), filter.PageSize),
	}, nil
}

// GetProductByID retrieves a single product
func (s *CatalogService) GetProductByID(productID string) (*models.Product, error) {
	row := s.db.QueryRow(`
		SELECT id, name, brand, description, category, tag, color, images,
			   price, mrp, discount, in_stock, rating, review_count, created_at, updated_at
		FROM products WHERE id = ?
	`, productID)

	product, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// AddProduct creates a new catalog product
func (s *CatalogService) AddProduct(creation *models.ProductCreation) (*models.Product, error) {
	product := &models.Product{
		ID:          uuid.New().String(),
		Name:        creation.Name,
		Brand:       creation.Brand,
		Description: creation.Description,
		Category:    creation.Category,
		Tag:         creation.Tag,
		Color:       creation.Color,
		Images:      creation.Images,
		Price:       creation.Price,
		MRP:         creation.MRP,
		Discount:    creation.Discount,
		InStock:     creation.InStock,
		Rating:      creation.Rating,
		ReviewCount: creation.ReviewCount,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	imagesJSON, err := product.GetImagesJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode images: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO products (id, name, brand, description, category, tag, color, images,
			price, mrp, discount, in_stock, rating, review_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, product.ID, product.Name, product.Brand, product.Description, product.Category,
		product.Tag, product.Color, imagesJSON, product.Price, product.MRP,
		product.Discount, product.InStock, product.Rating, product.ReviewCount,
		product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	return product, nil
}

// UpdateProduct applies a partial update to a product
func (s *CatalogService) UpdateProduct(productID string, update *models.ProductUpdate) (*models.Product, error) {
	product, err := s.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Brand != nil {
		product.Brand = *update.Brand
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Tag != nil {
		product.Tag = *update.Tag
	}
	if update.Color != nil {
		product.Color = *update.Color
	}
	if update.Images != nil {
		product.Images = update.Images
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.MRP != nil {
		product.MRP = *update.MRP
	}
	if update.Discount != nil {
		product.Discount = *update.Discount
	}
	if update.InStock != nil {
		product.InStock = *update.InStock
	}
	product.UpdatedAt = time.Now()

	imagesJSON, err := product.GetImagesJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode images: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE products
		SET name = ?, brand = ?, description = ?, category = ?, tag = ?, color = ?,
			images = ?, price = ?, mrp = ?, discount = ?, in_stock = ?, updated_at = ?
		WHERE id = ?
	`, product.Name, product.Brand, product.Description, product.Category, product.Tag,
		product.Color, imagesJSON, product.Price, product.MRP, product.Discount,
		product.InStock, product.UpdatedAt, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// DeleteProduct removes a product; cart and wishlist rows cascade
func (s *CatalogService) DeleteProduct(productID string) error {
	result, err := s.db.Exec("DELETE FROM products WHERE id = ?", productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("product not found")
	}

	return nil
}

// getAllProducts loads the full catalog in insertion order
func (s *CatalogService) getAllProducts() ([]*models.Product, error) {
	rows, err := s.db.Query(`
		SELECT id, name, brand, description, category, tag, color, images,
			   price, mrp, discount, in_stock, rating, review_count, created_at, updated_at
		FROM products ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Printf("Warning: skipping unreadable product row: %v", err)
			continue
		}
		products = append(products, product)
	}

	return products, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var product models.Product
	var images string

	err := row.Scan(
		&product.ID, &product.Name, &product.Brand, &product.Description,
		&product.Category, &product.Tag, &product.Color, &images,
		&product.Price, &product.MRP, &product.Discount, &product.InStock,
		&product.Rating, &product.ReviewCount, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := product.SetImagesFromJSON(images); err != nil {
		// Parse failure degrades to an empty image list, never an error
		log.Printf("Warning: invalid images JSON for product %s: %v", product.ID, err)
		product.Images = []string{}
	}

	return &product, nil
}
