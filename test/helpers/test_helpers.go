package helpers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"storefront-backend/config"
	"storefront-backend/database"
	"storefront-backend/internal/api"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/services"
)

// TestConfig holds test configuration
type TestConfig struct {
	JWTSecret     string
	DatabaseURL   string
	Environment   string
	AdminEmail    string
	AdminPassword string
	PageSize      int
}

// NewTestConfig creates a new test configuration
func NewTestConfig() *TestConfig {
	return &TestConfig{
		JWTSecret:     "test-jwt-secret-key-12345678901234567890",
		DatabaseURL:   ":memory:",
		Environment:   "test",
		AdminEmail:    "admin@example.com",
		AdminPassword: "password123",
		PageSize:      4,
	}
}

// TestDatabase manages test database setup and teardown
type TestDatabase struct {
	DB *sql.DB
}

// SetupTestDatabase creates an in-memory SQLite database for testing
func SetupTestDatabase() *TestDatabase {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		panic(fmt.Sprintf("Failed to open test database: %v", err))
	}

	if err := database.Migrate(db); err != nil {
		panic(fmt.Sprintf("Failed to migrate test database: %v", err))
	}

	return &TestDatabase{DB: db}
}

// Close closes the test database
func (td *TestDatabase) Close() {
	if td.DB != nil {
		td.DB.Close()
	}
}

// TestProduct describes a product row for seeding tests. Zero values get
// sensible defaults from CreateTestProduct.
type TestProduct struct {
	ID          string
	Name        string
	Brand       string
	Description string
	Category    string
	Tag         string
	Color       string
	Price       float64
	MRP         float64
	InStock     bool
	Rating      float64
	ReviewCount int
}

// CreateTestProduct inserts a product row and returns its id
func (td *TestDatabase) CreateTestProduct(p TestProduct) (string, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Name == "" {
		p.Name = "Test Product"
	}
	if p.Brand == "" {
		p.Brand = "Test Brand"
	}
	if p.Category == "" {
		p.Category = "Men"
	}
	if p.Tag == "" {
		p.Tag = "Shirts"
	}
	if p.Price == 0 {
		p.Price = 29.99
	}
	if p.MRP == 0 {
		p.MRP = p.Price
	}

	_, err := td.DB.Exec(`
		INSERT INTO products (id, name, brand, description, category, tag, color, images,
			price, mrp, discount, in_stock, rating, review_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, '[]', ?, ?, 0, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Brand, p.Description, p.Category, p.Tag, p.Color,
		p.Price, p.MRP, p.InStock, p.Rating, p.ReviewCount, time.Now(), time.Now())
	return p.ID, err
}

// CreateTestAdmin inserts an admin user with a bcrypt-hashed password
func (td *TestDatabase) CreateTestAdmin(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = td.DB.Exec(
		"INSERT INTO admin_users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
		uuid.New().String(), email, string(hash), time.Now(),
	)
	return err
}

// SetupTestRouter creates a test router with the full storefront route table
func SetupTestRouter(db *sql.DB, cfg *TestConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	aiConfig := &config.Config{
		Environment: cfg.Environment,
		AITimeout:   1,
	}

	authService := services.NewAuthService(db, cfg.JWTSecret, 86400)
	authMiddleware := middleware.NewAuthMiddleware(authService)
	catalogService := services.NewCatalogService(db)
	cartService := services.NewCartService(db)
	ratingService := services.NewRatingService(db)
	orderService := services.NewOrderService(db)
	reviewService := services.NewReviewService(db)
	wishlistService := services.NewWishlistService(db)
	settingsService := services.NewSettingsService(db)
	newsletterService := services.NewNewsletterService(db)
	aiService := services.NewAIService(aiConfig)

	authHandlers := api.NewAuthHandlers(authService)
	catalogHandlers := api.NewCatalogHandlers(catalogService, ratingService, cfg.PageSize)
	cartHandlers := api.NewCartHandlers(cartService)
	ratingHandlers := api.NewRatingHandlers(ratingService)
	orderHandlers := api.NewOrderHandlers(orderService)
	reviewHandlers := api.NewReviewHandlers(reviewService)
	wishlistHandlers := api.NewWishlistHandlers(wishlistService)
	settingsHandlers := api.NewSettingsHandlers(settingsService)
	newsletterHandlers := api.NewNewsletterHandlers(newsletterService)
	aiHandlers := api.NewAIHandlers(aiService)

	apiGroup := router.Group("/api/v1")
	{
		apiGroup.GET("/products", catalogHandlers.GetProducts)
		apiGroup.GET("/products/:id", catalogHandlers.GetProduct)
		apiGroup.GET("/products/:id/ratings", ratingHandlers.GetProductRatings)
		apiGroup.POST("/products/:id/ratings", ratingHandlers.AddProductRating)
		apiGroup.GET("/products/:id/reviews", reviewHandlers.GetReviews)
		apiGroup.POST("/products/:id/reviews", reviewHandlers.AddReview)

		apiGroup.GET("/cart", cartHandlers.GetCart)
		apiGroup.POST("/cart", cartHandlers.AddToCart)
		apiGroup.PUT("/cart", cartHandlers.UpdateQuantity)
		apiGroup.DELETE("/cart", cartHandlers.ClearCart)
		apiGroup.DELETE("/cart/:productId", cartHandlers.RemoveFromCart)

		apiGroup.GET("/wishlist", wishlistHandlers.GetWishlist)
		apiGroup.POST("/wishlist", wishlistHandlers.AddToWishlist)
		apiGroup.DELETE("/wishlist/:productId", wishlistHandlers.RemoveFromWishlist)

		apiGroup.POST("/checkout", orderHandlers.Checkout)
		apiGroup.GET("/orders/:id", orderHandlers.GetOrder)

		apiGroup.GET("/testimonials", reviewHandlers.GetTestimonials)
		apiGroup.GET("/settings", settingsHandlers.GetSettings)
		apiGroup.POST("/newsletter/subscribe", newsletterHandlers.Subscribe)

		apiGroup.POST("/ai/generate-image", aiHandlers.GenerateImage)

		apiGroup.POST("/auth/login", authHandlers.Login)
		apiGroup.POST("/auth/logout", authMiddleware.AuthRequired(), authHandlers.Logout)

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.AuthRequired())
		{
			admin.POST("/products", catalogHandlers.AddProduct)
			admin.PUT("/products/:id", catalogHandlers.UpdateProduct)
			admin.DELETE("/products/:id", catalogHandlers.DeleteProduct)

			admin.GET("/orders", orderHandlers.GetOrders)
			admin.PUT("/orders/:id/status", orderHandlers.UpdateOrderStatus)
			admin.GET("/customers", orderHandlers.GetCustomers)

			admin.PUT("/settings", settingsHandlers.UpdateSettings)
			admin.GET("/subscribers", newsletterHandlers.GetSubscribers)
		}
	}

	return router
}

// MakeRequest makes an HTTP request to the test server
func MakeRequest(router *gin.Engine, method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// AssertSuccessResponse asserts that the response is successful
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) map[string]interface{} {
	assert.Equal(t, expectedStatus, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response["success"].(bool))

	return response
}

// AssertErrorResponse asserts that the response is an error
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) map[string]interface{} {
	assert.Equal(t, expectedStatus, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.False(t, response["success"].(bool))

	return response
}

// TestSuite bundles a database, router and admin token for endpoint tests
type TestSuite struct {
	DB         *TestDatabase
	Router     *gin.Engine
	Config     *TestConfig
	AdminToken string
}

// NewTestSuite creates a new test suite with a seeded admin account
func NewTestSuite(t *testing.T) *TestSuite {
	cfg := NewTestConfig()
	db := SetupTestDatabase()
	router := SetupTestRouter(db.DB, cfg)

	err := db.CreateTestAdmin(cfg.AdminEmail, cfg.AdminPassword)
	assert.NoError(t, err)

	w := MakeRequest(router, "POST", "/api/v1/auth/login", map[string]string{
		"email":    cfg.AdminEmail,
		"password": cfg.AdminPassword,
	}, nil)
	response := AssertSuccessResponse(t, w, http.StatusOK)
	data := response["data"].(map[string]interface{})

	return &TestSuite{
		DB:         db,
		Router:     router,
		Config:     cfg,
		AdminToken: data["token"].(string),
	}
}

// Cleanup closes the test suite's database
func (ts *TestSuite) Cleanup() {
	ts.DB.Close()
}

// AdminHeaders returns authorization headers for the admin account
func (ts *TestSuite) AdminHeaders() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + ts.AdminToken,
	}
}

// SessionHeaders returns the session identity header used by cart, wishlist
// and checkout endpoints
func SessionHeaders(sessionID string) map[string]string {
	return map[string]string{
		"X-Session-ID": sessionID,
	}
}
