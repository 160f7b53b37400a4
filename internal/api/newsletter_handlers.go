package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/services"
)

// NewsletterHandlers serves newsletter subscriptions
type NewsletterHandlers struct {
	newsletter *services.NewsletterService
}

// NewNewsletterHandlers creates newsletter handlers
func NewNewsletterHandlers(newsletter *services.NewsletterService) *NewsletterHandlers {
	return &NewsletterHandlers{newsletter: newsletter}
}

type subscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

// Subscribe adds an email to the newsletter list
func (h *NewsletterHandlers) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Email is required",
		})
		return
	}

	subscriber, err := h.newsletter.Subscribe(req.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    subscriber,
	})
}

// GetSubscribers returns all newsletter subscribers (admin)
func (h *NewsletterHandlers) GetSubscribers(c *gin.Context) {
	subscribers, err := h.newsletter.ListSubscribers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to retrieve subscribers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    subscribers,
	})
}
