package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/services"
)

// FallbackImageURL is served whenever image generation fails; the storefront
// always has an asset to show.
const FallbackImageURL = "/assets/fallback/hero.jpg"

// AIHandlers serves the generative marketing widget endpoints
type AIHandlers struct {
	ai *services.AIService
}

// NewAIHandlers creates AI handlers
func NewAIHandlers(ai *services.AIService) *AIHandlers {
	return &AIHandlers{ai: ai}
}

type generateImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateImage produces a marketing image for the given prompt. Generation
// failures degrade to a static fallback asset with a 200 response: the page
// must always have something to render.
func (h *AIHandlers) GenerateImage(c *gin.Context) {
	var req generateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Prompt is required",
		})
		return
	}

	image, err := h.ai.GenerateImage(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Printf("Image generation failed, using fallback: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"image":    FallbackImageURL,
				"fallback": true,
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"image":    image,
			"fallback": false,
		},
	})
}
