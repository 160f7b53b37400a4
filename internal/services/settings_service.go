package services

import (
	"database/sql"
	"fmt"
	"time"

	"storefront-backend/internal/models"
)

// SettingsService handles the site-wide settings singleton
type SettingsService struct {
	db *sql.DB
}

// NewSettingsService creates a new settings service
func NewSettingsService(db *sql.DB) *SettingsService {
	return &SettingsService{db: db}
}

// GetSettings returns the settings singleton. A missing row degrades to
// defaults rather than an error.
func (s *SettingsService) GetSettings() (*models.Settings, error) {
	var settings models.Settings
	err := s.db.QueryRow(`
		SELECT site_name, tagline, logo_url, hero_heading, hero_subheading,
			   support_email, currency, updated_at
		FROM settings WHERE id = 1
	`).Scan(
		&settings.SiteName, &settings.Tagline, &settings.LogoURL,
		&settings.HeroHeading, &settings.HeroSubheading,
		&settings.SupportEmail, &settings.Currency, &settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return &models.Settings{Currency: "USD"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &settings, nil
}

// UpdateSettings applies a partial update to the settings singleton
func (s *SettingsService) UpdateSettings(update *models.SettingsUpdate) (*models.Settings, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	if update.SiteName != nil {
		settings.SiteName = *update.SiteName
	}
	if update.Tagline != nil {
		settings.Tagline = *update.Tagline
	}
	if update.LogoURL != nil {
		settings.LogoURL = *update.LogoURL
	}
	if update.HeroHeading != nil {
		settings.HeroHeading = *update.HeroHeading
	}
	if update.HeroSubheading != nil {
		settings.HeroSubheading = *update.HeroSubheading
	}
	if update.SupportEmail != nil {
		settings.SupportEmail = *update.SupportEmail
	}
	if update.Currency != nil {
		settings.Currency = *update.Currency
	}
	settings.UpdatedAt = time.Now()

	_, err = s.db.Exec(`
		INSERT INTO settings (id, site_name, tagline, logo_url, hero_heading, hero_subheading, support_email, currency, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			site_name = excluded.site_name,
			tagline = excluded.tagline,
			logo_url = excluded.logo_url,
			hero_heading = excluded.hero_heading,
			hero_subheading = excluded.hero_subheading,
			support_email = excluded.support_email,
			currency = excluded.currency,
			updated_at = excluded.updated_at
	`, settings.SiteName, settings.Tagline, settings.LogoURL, settings.HeroHeading,
		settings.HeroSubheading, settings.SupportEmail, settings.Currency, settings.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return settings, nil
}
