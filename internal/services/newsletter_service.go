package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"storefront-backend/internal/models"
	"storefront-backend/internal/utils"
)

// NewsletterService handles newsletter subscriptions
type NewsletterService struct {
	db *sql.DB
}

// NewNewsletterService creates a new newsletter service
func NewNewsletterService(db *sql.DB) *NewsletterService {
	return &NewsletterService{db: db}
}

// Subscribe adds an email to the newsletter list. Emails are normalized
// before storage; duplicates are rejected.
func (s *NewsletterService) Subscribe(email string) (*models.Subscriber, error) {
	email = utils.NormalizeEmail(email)
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("invalid email address")
	}

	var existingID string
	err := s.db.QueryRow("SELECT id FROM subscribers WHERE email = ?", email).Scan(&existingID)
	if err == nil {
		return nil, fmt.Errorf("email is already subscribed")
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}

	subscriber := &models.Subscriber{
		ID:           uuid.New().String(),
		Email:        email,
		SubscribedAt: time.Now(),
	}
	_, err = s.db.Exec(
		"INSERT INTO subscribers (id, email, subscribed_at) VALUES (?, ?, ?)",
		subscriber.ID, subscriber.Email, subscriber.SubscribedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	return subscriber, nil
}

// ListSubscribers returns all subscribers, newest first
func (s *NewsletterService) ListSubscribers() ([]*models.Subscriber, error) {
	rows, err := s.db.Query("SELECT id, email, subscribed_at FROM subscribers ORDER BY subscribed_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []*models.Subscriber
	for rows.Next() {
		var sub models.Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.SubscribedAt); err != nil {
			continue
		}
		subscribers = append(subscribers, &sub)
	}

	return subscribers, nil
}
