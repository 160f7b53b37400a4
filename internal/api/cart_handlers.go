package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/models"
	"storefront-backend/internal/services"
)

// CartHandlers serves the session cart endpoints. Sessions are identified
// by the X-Session-ID header the storefront client generates on first load.
type CartHandlers struct {
	cart *services.CartService
}

// NewCartHandlers creates cart handlers
func NewCartHandlers(cart *services.CartService) *CartHandlers {
	return &CartHandlers{cart: cart}
}

// sessionID extracts the session identifier, rejecting requests without one
func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Session-ID")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "X-Session-ID header required",
		})
		return "", false
	}
	return id, true
}

// cartMutation is the request body for add/update operations
type cartMutation struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// GetCart returns the cart items and the derived total
func (h *CartHandlers) GetCart(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	items, err := h.cart.GetCart(session)
	if err != nil {
		log.Printf("Failed to get cart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": items,
			"total": models.CartTotal(items),
		},
	})
}

// AddToCart adds a product to the cart, merging duplicate products into one
// quantity-incremented line item
func (h *CartHandlers) AddToCart(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	var req cartMutation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	if err := h.cart.AddToCart(session, req.ProductID, req.Quantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.GetCart(c)
}

// UpdateQuantity sets a line item's quantity; zero or below removes it
func (h *CartHandlers) UpdateQuantity(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	var req cartMutation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	if err := h.cart.UpdateQuantity(session, req.ProductID, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.GetCart(c)
}

// RemoveFromCart deletes a line item; removing an absent item succeeds
func (h *CartHandlers) RemoveFromCart(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.cart.RemoveFromCart(session, c.Param("productId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.GetCart(c)
}

// ClearCart empties the cart
func (h *CartHandlers) ClearCart(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.cart.ClearCart(session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart cleared",
	})
}
