package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/services"
)

// WishlistHandlers serves the session wishlist endpoints
type WishlistHandlers struct {
	wishlist *services.WishlistService
}

// NewWishlistHandlers creates wishlist handlers
func NewWishlistHandlers(wishlist *services.WishlistService) *WishlistHandlers {
	return &WishlistHandlers{wishlist: wishlist}
}

type wishlistMutation struct {
	ProductID string `json:"productId" binding:"required"`
}

// GetWishlist returns the session's saved products
func (h *WishlistHandlers) GetWishlist(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	items, err := h.wishlist.GetWishlist(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to retrieve wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
	})
}

// AddToWishlist saves a product; saving an already-saved product succeeds
func (h *WishlistHandlers) AddToWishlist(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	var req wishlistMutation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Product id is required",
		})
		return
	}

	if err := h.wishlist.AddToWishlist(session, req.ProductID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.GetWishlist(c)
}

// RemoveFromWishlist deletes a saved product
func (h *WishlistHandlers) RemoveFromWishlist(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.wishlist.RemoveFromWishlist(session, c.Param("productId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.GetWishlist(c)
}
