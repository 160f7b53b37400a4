package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/models"
	"storefront-backend/internal/services"
)

// ReviewHandlers serves written reviews and testimonials
type ReviewHandlers struct {
	reviews *services.ReviewService
}

// NewReviewHandlers creates review handlers
func NewReviewHandlers(reviews *services.ReviewService) *ReviewHandlers {
	return &ReviewHandlers{reviews: reviews}
}

// GetTestimonials returns the seeded storefront testimonials
func (h *ReviewHandlers) GetTestimonials(c *gin.Context) {
	testimonials, err := h.reviews.GetTestimonials()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to retrieve testimonials",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    testimonials,
	})
}

// GetReviews returns written reviews for a product
func (h *ReviewHandlers) GetReviews(c *gin.Context) {
	reviews, err := h.reviews.GetReviews(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to retrieve reviews",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reviews,
	})
}

// AddReview submits a written review for a product
func (h *ReviewHandlers) AddReview(c *gin.Context) {
	var creation models.ReviewCreation
	if err := c.ShouldBindJSON(&creation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid review data: " + err.Error(),
		})
		return
	}

	review, err := h.reviews.AddReview(c.Param("id"), &creation)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    review,
	})
}
