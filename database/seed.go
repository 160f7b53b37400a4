package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// seedProduct is the shape of one hard-coded catalog entry
type seedProduct struct {
	name, brand, description, category, tag, color string
	images                                         string
	price, mrp                                     float64
	discount                                       string
	rating                                         float64
	reviewCount                                    int
}

var seedProducts = []seedProduct{
	{"Aurora Silk Dress", "Velora", "Flowing silk evening dress with a soft aurora gradient.", "Dresses", "New Arrival", "Lavender", `["/assets/products/aurora-dress-1.jpg","/assets/products/aurora-dress-2.jpg"]`, 129.99, 189.99, "32% OFF", 4.6, 124},
	{"Classic Trench Coat", "Northwind", "Double-breasted water-resistant trench with belted waist.", "Outerwear", "Best Seller", "Beige", `["/assets/products/trench-1.jpg"]`, 149.50, 210.00, "29% OFF", 4.8, 89},
	{"Luna Knit Sweater", "Velora", "Chunky knit sweater in merino wool blend.", "Knitwear", "Best Seller", "Cream", `["/assets/products/luna-knit-1.jpg"]`, 68.00, 95.00, "28% OFF", 4.4, 211},
	{"Midnight Denim Jacket", "Harbor & Co", "Structured denim jacket with a dark indigo wash.", "Outerwear", "New Arrival", "Indigo", `["/assets/products/denim-jacket-1.jpg"]`, 89.00, 120.00, "26% OFF", 4.2, 57},
	{"Sierra Linen Shirt", "Harbor & Co", "Breathable relaxed-fit linen shirt for warm days.", "Shirts", "Summer", "White", `["/assets/products/linen-shirt-1.jpg"]`, 45.00, 60.00, "25% OFF", 4.1, 43},
	{"Ember Wrap Skirt", "Velora", "Asymmetric wrap skirt in warm ember tones.", "Skirts", "New Arrival", "Rust", `["/assets/products/wrap-skirt-1.jpg"]`, 54.00, 72.00, "25% OFF", 4.3, 36},
	{"Drift Cargo Pants", "Northwind", "Relaxed tapered cargos with articulated knees.", "Pants", "Best Seller", "Olive", `["/assets/products/cargo-1.jpg"]`, 72.00, 98.00, "27% OFF", 4.5, 164},
	{"Haze Oversized Tee", "Harbor & Co", "Heavyweight cotton tee with a washed-out finish.", "Shirts", "Summer", "Grey", `["/assets/products/tee-1.jpg"]`, 28.00, 38.00, "26% OFF", 3.9, 97},
	{"Solstice Maxi Dress", "Velora", "Sleeveless maxi dress with a sun-faded print.", "Dresses", "Summer", "Coral", `["/assets/products/maxi-1.jpg"]`, 98.00, 140.00, "30% OFF", 4.7, 142},
	{"Quarry Wool Scarf", "Northwind", "Brushed lambswool scarf woven in a quarry check.", "Accessories", "Winter", "Charcoal", `["/assets/products/scarf-1.jpg"]`, 34.00, 48.00, "29% OFF", 4.0, 28},
}

type seedTestimonial struct {
	author, role, quote string
}

var seedTestimonials = []seedTestimonial{
	{"Amara Osei", "Stylist", "The curation here is unmatched. Every piece feels intentional."},
	{"Jordan Blake", "Photographer", "Fast shipping and the quality exceeded what the photos promised."},
	{"Priya Nair", "Designer", "My go-to store for seasonal staples. The knitwear is exceptional."},
}

// Seed populates initial catalog data, settings, and the admin account.
// Seeding runs once: a meta 'initialized' flag gates repeat runs, mirroring
// fresh installs that keep their data across restarts.
func Seed(db *sql.DB, adminEmail, adminPassword string) error {
	var initialized string
	err := db.QueryRow("SELECT value FROM meta WHERE key = 'initialized'").Scan(&initialized)
	if err == nil && initialized == "true" {
		return nil
	}
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to check seed flag: %w", err)
	}

	for _, p := range seedProducts {
		_, err := db.Exec(`
			INSERT INTO products (id, name, brand, description, category, tag, color, images,
				price, mrp, discount, in_stock, rating, review_count)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, TRUE, ?, ?)
		`, uuid.New().String(), p.name, p.brand, p.description, p.category, p.tag, p.color,
			p.images, p.price, p.mrp, p.discount, p.rating, p.reviewCount)
		if err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.name, err)
		}
	}

	for _, t := range seedTestimonials {
		_, err := db.Exec(
			"INSERT INTO testimonials (id, author, role, quote) VALUES (?, ?, ?, ?)",
			uuid.New().String(), t.author, t.role, t.quote,
		)
		if err != nil {
			return fmt.Errorf("failed to seed testimonial: %w", err)
		}
	}

	_, err = db.Exec(`
		INSERT INTO settings (id, site_name, tagline, hero_heading, hero_subheading, support_email, currency)
		VALUES (1, 'Velora', 'Wear the moment', 'New season, new you', 'Explore the latest arrivals', 'support@velora.shop', 'USD')
	`)
	if err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	_, err = db.Exec(
		"INSERT INTO admin_users (id, email, password_hash) VALUES (?, ?, ?)",
		uuid.New().String(), adminEmail, string(hashed),
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if _, err := db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('initialized', 'true')"); err != nil {
		return fmt.Errorf("failed to set seed flag: %w", err)
	}

	log.Printf("Seeded %d products, %d testimonials, settings and admin account", len(seedProducts), len(seedTestimonials))
	return nil
}
