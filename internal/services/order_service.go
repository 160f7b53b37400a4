package services

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"storefront-backend/internal/models"
)

// OrderService handles checkout and order administration
type OrderService struct {
	db *sql.DB
}

// NewOrderService creates a new order service
func NewOrderService(db *sql.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder snapshots the session's cart into a new pending order and
// clears the cart. Fails if the cart is empty.
func (s *OrderService) CreateOrder(sessionID string, customer models.Customer, payment models.Payment) (*models.Order, error) {
	cart := NewCartService(s.db)
	items, err := cart.GetCart(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	order := &models.Order{
		ID:        uuid.New().String(),
		OrderDate: time.Now(),
		Customer:  customer,
		Status:    models.OrderStatusPending,
		Payment:   payment,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, item := range items {
		image := ""
		if item.Product != nil && len(item.Product.Images) > 0 {
			image = item.Product.Images[0]
		}
		name := item.ProductID
		if item.Product != nil {
			name = item.Product.Name
		}
		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Name:      name,
			Image:     image,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
		order.Total += item.TotalPrice()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO orders (id, order_date, full_name, email, phone, address, city, zip_code,
			total, status, payment_method, card_last4, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, order.ID, order.OrderDate, customer.FullName, customer.Email, customer.Phone,
		customer.Address, customer.City, customer.ZipCode, order.Total,
		order.Status, payment.Method, payment.CardLast4, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.Exec(`
			INSERT INTO order_items (id, order_id, product_id, name, image, price, quantity)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, item.ID, item.OrderID, item.ProductID, item.Name, item.Image, item.Price, item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	if _, err = tx.Exec("DELETE FROM cart_items WHERE session_id = ?", sessionID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return order, nil
}

// orderSortClauses maps admin sort keys to stable ORDER BY clauses. The
// rowid tiebreak preserves insertion order for equal keys.
var orderSortClauses = map[string]string{
	"date-asc":   "order_date ASC, rowid ASC",
	"date-desc":  "order_date DESC, rowid ASC",
	"total-asc":  "total ASC, rowid ASC",
	"total-desc": "total DESC, rowid ASC",
}

// GetOrders retrieves orders filtered by status ("All" or empty passes
// everything) and sorted by the given key (default date-desc)
func (s *OrderService) GetOrders(status, sortBy string) ([]*models.Order, error) {
	orderBy, ok := orderSortClauses[sortBy]
	if !ok {
		orderBy = orderSortClauses["date-desc"]
	}

	query := `
		SELECT id, order_date, full_name, email, phone, address, city, zip_code,
			   total, status, payment_method, card_last4, created_at, updated_at
		FROM orders
	`
	var args []interface{}
	if status != "" && status != "All" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY " + orderBy

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	byID := make(map[string]*models.Order)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			log.Printf("Warning: skipping unreadable order row: %v", err)
			continue
		}
		orders = append(orders, order)
		byID[order.ID] = order
	}

	if err := s.attachItems(byID); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetOrderByID retrieves a single order with its items
func (s *OrderService) GetOrderByID(orderID string) (*models.Order, error) {
	row := s.db.QueryRow(`
		SELECT id, order_date, full_name, email, phone, address, city, zip_code,
			   total, status, payment_method, card_last4, created_at, updated_at
		FROM orders WHERE id = ?
	`, orderID)

	order, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if err := s.attachItems(map[string]*models.Order{order.ID: order}); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus overwrites an order's status. Any valid status may
// replace any other; there is no transition validation.
func (s *OrderService) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid order status: %s", status)
	}

	result, err := s.db.Exec(
		"UPDATE orders SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now(), orderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("order not found")
	}

	return nil
}

// CustomerRollup groups orders into pseudo-customer records keyed by
// lowercase(fullName + zipCode). The key is a heuristic identity: same-name
// same-zip customers merge into one record. Records keep first-seen order.
func CustomerRollup(orders []*models.Order) []*models.CustomerSummary {
	var summaries []*models.CustomerSummary
	byKey := make(map[string]*models.CustomerSummary)

	for _, order := range orders {
		key := models.CustomerKey(order.Customer.FullName, order.Customer.ZipCode)
		summary, exists := byKey[key]
		if !exists {
			summary = &models.CustomerSummary{
				Key:      key,
				FullName: order.Customer.FullName,
				ZipCode:  order.Customer.ZipCode,
				Email:    order.Customer.Email,
			}
			byKey[key] = summary
			summaries = append(summaries, summary)
		}
		summary.OrderCount++
		summary.TotalSpend += order.Total
	}

	return summaries
}

// GetCustomers returns the pseudo-customer rollup over all orders
func (s *OrderService) GetCustomers() ([]*models.CustomerSummary, error) {
	orders, err := s.GetOrders("All", "date-asc")
	if err != nil {
		return nil, err
	}
	return CustomerRollup(orders), nil
}

// attachItems loads order items for the given orders in a single query
func (s *OrderService) attachItems(orders map[string]*models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	rows, err := s.db.Query(`
		SELECT id, order_id, product_id, name, image, price, quantity
		FROM order_items ORDER BY rowid
	`)
	if err != nil {
		return fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name,
			&item.Image, &item.Price, &item.Quantity)
		if err != nil {
			continue
		}
		if order, ok := orders[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	return nil
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var order models.Order
	err := row.Scan(
		&order.ID, &order.OrderDate,
		&order.Customer.FullName, &order.Customer.Email, &order.Customer.Phone,
		&order.Customer.Address, &order.Customer.City, &order.Customer.ZipCode,
		&order.Total, &order.Status, &order.Payment.Method, &order.Payment.CardLast4,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
