package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/models"
	"storefront-backend/internal/services"
)

// CatalogHandlers serves the product catalog endpoints
type CatalogHandlers struct {
	catalog         *services.CatalogService
	ratings         *services.RatingService
	defaultPageSize int
}

// NewCatalogHandlers creates catalog handlers
func NewCatalogHandlers(catalog *services.CatalogService, ratings *services.RatingService, defaultPageSize int) *CatalogHandlers {
	return &CatalogHandlers{
		catalog:         catalog,
		ratings:         ratings,
		defaultPageSize: defaultPageSize,
	}
}

// GetProducts returns one page of the filtered catalog.
// Clients send page=1 whenever they change a filter; a stale page from a
// previous filter set is never reused.
func (h *CatalogHandlers) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(h.defaultPageSize)))

	result, err := h.catalog.ListProducts(services.ProductFilter{
		Category: c.DefaultQuery("category", "All"),
		Tag:      c.DefaultQuery("tag", "All"),
		Query:    c.Query("q"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		log.Printf("Failed to list products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to retrieve products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// GetProduct returns a single product with its blended rating display data.
// The blend combines the seeded rating statistics with the user-rating
// summary here, in the consuming layer; the rating service itself never
// sees seed data.
func (h *CatalogHandlers) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	product, err := h.catalog.GetProductByID(productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Product not found",
		})
		return
	}

	summary, err := h.ratings.GetProductRatingSummary(productID)
	if err != nil {
		log.Printf("Failed to summarize ratings for %s: %v", productID, err)
		summary = models.RatingSummary{}
	}
	userRatings, err := h.ratings.GetRatingsForProduct(productID)
	if err != nil {
		log.Printf("Failed to load ratings for %s: %v", productID, err)
		userRatings = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"product":       product,
			"blendedRating": models.BlendedRating(product.Rating, product.ReviewCount, summary),
			"totalRatings":  product.ReviewCount + summary.Count,
			"histogram":     models.RatingHistogram(product.ReviewCount, userRatings),
			"userSummary":   summary,
		},
	})
}

// AddProduct creates a product (admin)
func (h *CatalogHandlers) AddProduct(c *gin.Context) {
	var creation models.ProductCreation
	if err := c.ShouldBindJSON(&creation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid product data: " + err.Error(),
		})
		return
	}

	product, err := h.catalog.AddProduct(&creation)
	if err != nil {
		log.Printf("Failed to add product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to add product",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    product,
	})
}

// UpdateProduct applies a partial update to a product (admin)
func (h *CatalogHandlers) UpdateProduct(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid update data: " + err.Error(),
		})
		return
	}

	product, err := h.catalog.UpdateProduct(c.Param("id"), &update)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}

// DeleteProduct removes a product (admin)
func (h *CatalogHandlers) DeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted",
	})
}
