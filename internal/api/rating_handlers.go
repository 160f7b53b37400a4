package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/services"
)

// RatingHandlers serves the user star-rating endpoints
type RatingHandlers struct {
	ratings *services.RatingService
}

// NewRatingHandlers creates rating handlers
func NewRatingHandlers(ratings *services.RatingService) *RatingHandlers {
	return &RatingHandlers{ratings: ratings}
}

type ratingSubmission struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// GetProductRatings returns all rating records for a product
func (h *RatingHandlers) GetProductRatings(c *gin.Context) {
	ratings, err := h.ratings.GetRatingsForProduct(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to retrieve ratings",
		})
		return
	}

	summary, err := h.ratings.GetProductRatingSummary(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to summarize ratings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"ratings": ratings,
			"summary": summary,
		},
	})
}

// AddProductRating appends a new rating record for a product
func (h *RatingHandlers) AddProductRating(c *gin.Context) {
	var submission ratingSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Rating must be between 1 and 5",
		})
		return
	}

	rating, err := h.ratings.AddRating(c.Param("id"), submission.Rating)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    rating,
	})
}
