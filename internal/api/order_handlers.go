package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/models"
	"storefront-backend/internal/services"
)

// OrderHandlers serves checkout and the admin order pipeline
type OrderHandlers struct {
	orders *services.OrderService
}

// NewOrderHandlers creates order handlers
func NewOrderHandlers(orders *services.OrderService) *OrderHandlers {
	return &OrderHandlers{orders: orders}
}

// Checkout snapshots the session's cart into a new order
func (h *OrderHandlers) Checkout(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	var creation models.OrderCreation
	if err := c.ShouldBindJSON(&creation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid checkout data: " + err.Error(),
		})
		return
	}
	if creation.Customer.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Customer name is required",
		})
		return
	}

	order, err := h.orders.CreateOrder(session, creation.Customer, creation.Payment)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetOrder returns a single order by id
func (h *OrderHandlers) GetOrder(c *gin.Context) {
	order, err := h.orders.GetOrderByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetOrders returns orders filtered by status and sorted for the admin view
func (h *OrderHandlers) GetOrders(c *gin.Context) {
	status := c.DefaultQuery("status", "All")
	sortBy := c.DefaultQuery("sort", "date-desc")

	orders, err := h.orders.GetOrders(status, sortBy)
	if err != nil {
		log.Printf("Failed to get orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

type statusUpdate struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus overwrites an order's status; any valid status is
// accepted regardless of the current one
func (h *OrderHandlers) UpdateOrderStatus(c *gin.Context) {
	var update statusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Status is required",
		})
		return
	}

	if err := h.orders.UpdateOrderStatus(c.Param("id"), update.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated",
	})
}

// GetCustomers returns the pseudo-customer rollup. Customers are grouped by
// a name+zip heuristic, so the report is approximate.
func (h *OrderHandlers) GetCustomers(c *gin.Context) {
	customers, err := h.orders.GetCustomers()
	if err != nil {
		log.Printf("Failed to build customer rollup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to retrieve customers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customers,
	})
}
