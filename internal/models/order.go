package models

import (
	"strings"
	"time"
)

// OrderStatus represents order status
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is a known order status. Any valid status may
// replace any other; there is no enforced transition graph.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Customer is the shipping snapshot embedded in an order at checkout time
type Customer struct {
	FullName string `json:"fullName" db:"full_name"`
	Email    string `json:"email" db:"email"`
	Phone    string `json:"phone" db:"phone"`
	Address  string `json:"address" db:"address"`
	City     string `json:"city" db:"city"`
	ZipCode  string `json:"zipCode" db:"zip_code"`
}

// Payment holds non-sensitive payment display fields only
type Payment struct {
	Method    string `json:"method" db:"payment_method"`
	CardLast4 string `json:"cardLast4" db:"card_last4"`
}

// OrderItem represents an item within an order, a product snapshot frozen at
// checkout time
type OrderItem struct {
	ID        string  `json:"id" db:"id"`
	OrderID   string  `json:"orderId" db:"order_id"`
	ProductID string  `json:"productId" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	Image     string  `json:"image" db:"image"`
	Price     float64 `json:"price" db:"price"`
	Quantity  int     `json:"quantity" db:"quantity"`
}

// TotalPrice returns the total price for the order item
func (oi *OrderItem) TotalPrice() float64 {
	return oi.Price * float64(oi.Quantity)
}

// Order represents a completed checkout
type Order struct {
	ID        string      `json:"id" db:"id"`
	OrderDate time.Time   `json:"orderDate" db:"order_date"`
	Customer  Customer    `json:"customer"`
	Items     []OrderItem `json:"items,omitempty"`
	Total     float64     `json:"total" db:"total"`
	Status    OrderStatus `json:"status" db:"status"`
	Payment   Payment     `json:"payment"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"`
}

// GetTotalItems returns the total number of items in the order
func (o *Order) GetTotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// OrderCreation represents data for creating a new order at checkout
type OrderCreation struct {
	Customer Customer `json:"customer" binding:"required"`
	Payment  Payment  `json:"payment"`
}

// CustomerKey builds the pseudo-customer grouping key for admin reporting.
// It is a heuristic identity: two people sharing a name and zip code merge
// into one record.
func CustomerKey(fullName, zipCode string) string {
	return strings.ToLower(fullName + zipCode)
}

// CustomerSummary aggregates orders grouped by pseudo-customer key
type CustomerSummary struct {
	Key        string  `json:"key"`
	FullName   string  `json:"fullName"`
	ZipCode    string  `json:"zipCode"`
	Email      string  `json:"email"`
	OrderCount int     `json:"orderCount"`
	TotalSpend float64 `json:"totalSpend"`
}
