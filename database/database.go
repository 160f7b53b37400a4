package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Initialize creates and returns a database connection
func Initialize(databaseURL string) (*sql.DB, error) {
	// Add SQLite-specific parameters for better concurrent access
	if !strings.Contains(databaseURL, "?") && databaseURL != ":memory:" {
		databaseURL = databaseURL + "?_busy_timeout=30000&_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=1"
	}

	db, err := sql.Open("sqlite3", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 30000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA temp_store = memory",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			log.Printf("Warning: failed to set pragma %s: %v", pragma, err)
		}
	}

	log.Println("Database connection established successfully")
	return db, nil
}

// Migrate runs database migrations
func Migrate(db *sql.DB) error {
	migrations := []string{
		createProductsTable,
		createCartItemsTable,
		createWishlistItemsTable,
		createRatingsTable,
		createReviewsTable,
		createTestimonialsTable,
		createOrdersTable,
		createOrderItemsTable,
		createSubscribersTable,
		createSettingsTable,
		createAdminUsersTable,
		createMetaTable,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration %d: %w", i+1, err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	brand TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL,
	tag TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	images TEXT NOT NULL DEFAULT '[]',
	price REAL NOT NULL,
	mrp REAL NOT NULL DEFAULT 0,
	discount TEXT NOT NULL DEFAULT '',
	in_stock BOOLEAN NOT NULL DEFAULT TRUE,
	rating REAL NOT NULL DEFAULT 0,
	review_count INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const createCartItemsTable = `
CREATE TABLE IF NOT EXISTS cart_items (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	product_id TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	price REAL NOT NULL,
	added_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE,
	UNIQUE(session_id, product_id)
)`

const createWishlistItemsTable = `
CREATE TABLE IF NOT EXISTS wishlist_items (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	product_id TEXT NOT NULL,
	added_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE,
	UNIQUE(session_id, product_id)
)`

const createRatingsTable = `
CREATE TABLE IF NOT EXISTS ratings (
	id TEXT PRIMARY KEY,
	product_id TEXT NOT NULL,
	rating INTEGER NOT NULL CHECK(rating BETWEEN 1 AND 5),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
)`

const createReviewsTable = `
CREATE TABLE IF NOT EXISTS reviews (
	id TEXT PRIMARY KEY,
	product_id TEXT NOT NULL,
	author TEXT NOT NULL,
	text TEXT NOT NULL,
	rating INTEGER NOT NULL DEFAULT 5,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
)`

const createTestimonialsTable = `
CREATE TABLE IF NOT EXISTS testimonials (
	id TEXT PRIMARY KEY,
	author TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT '',
	quote TEXT NOT NULL
)`

const createOrdersTable = `
CREATE TABLE IF NOT EXISTS orders (
	id TEXT PRIMARY KEY,
	order_date DATETIME NOT NULL,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL DEFAULT '',
	zip_code TEXT NOT NULL DEFAULT '',
	total REAL NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	payment_method TEXT NOT NULL DEFAULT '',
	card_last4 TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const createOrderItemsTable = `
CREATE TABLE IF NOT EXISTS order_items (
	id TEXT PRIMARY KEY,
	order_id TEXT NOT NULL,
	product_id TEXT NOT NULL,
	name TEXT NOT NULL,
	image TEXT NOT NULL DEFAULT '',
	price REAL NOT NULL,
	quantity INTEGER NOT NULL,
	FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
)`

const createSubscribersTable = `
CREATE TABLE IF NOT EXISTS subscribers (
	id TEXT PRIMARY KEY,
	email TEXT UNIQUE NOT NULL,
	subscribed_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const createSettingsTable = `
CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	site_name TEXT NOT NULL DEFAULT '',
	tagline TEXT NOT NULL DEFAULT '',
	logo_url TEXT NOT NULL DEFAULT '',
	hero_heading TEXT NOT NULL DEFAULT '',
	hero_subheading TEXT NOT NULL DEFAULT '',
	support_email TEXT NOT NULL DEFAULT '',
	currency TEXT NOT NULL DEFAULT 'USD',
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const createAdminUsersTable = `
CREATE TABLE IF NOT EXISTS admin_users (
	id TEXT PRIMARY KEY,
	email TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const createMetaTable = `
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`
