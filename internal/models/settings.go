package models

import "time"

// Settings is the site-wide branding/configuration singleton. Read/write,
// no versioning.
type Settings struct {
	SiteName       string    `json:"siteName" db:"site_name"`
	Tagline        string    `json:"tagline" db:"tagline"`
	LogoURL        string    `json:"logoUrl" db:"logo_url"`
	HeroHeading    string    `json:"heroHeading" db:"hero_heading"`
	HeroSubheading string    `json:"heroSubheading" db:"hero_subheading"`
	SupportEmail   string    `json:"supportEmail" db:"support_email"`
	Currency       string    `json:"currency" db:"currency"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// SettingsUpdate represents partial settings changes from the admin panel
type SettingsUpdate struct {
	SiteName       *string `json:"siteName,omitempty"`
	Tagline        *string `json:"tagline,omitempty"`
	LogoURL        *string `json:"logoUrl,omitempty"`
	HeroHeading    *string `json:"heroHeading,omitempty"`
	HeroSubheading *string `json:"heroSubheading,omitempty"`
	SupportEmail   *string `json:"supportEmail,omitempty"`
	Currency       *string `json:"currency,omitempty"`
}
