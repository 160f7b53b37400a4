package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"storefront-backend/config"
	"storefront-backend/database"
	"storefront-backend/internal/api"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// One-time seeding, gated by the initialized flag
	if err := database.Seed(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowedOrigin := ""
		if cfg.AllowAllOrigins {
			allowedOrigin = "*"
		} else {
			for _, allowed := range cfg.AllowedOrigins {
				if origin == allowed {
					allowedOrigin = origin
					break
				}
			}
		}

		if allowedOrigin != "" {
			c.Header("Access-Control-Allow-Origin", allowedOrigin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Session-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Security middleware (rate limiting, request size caps)
	if os.Getenv("DISABLE_RATE_LIMITING") != "true" {
		router.Use(middleware.SecurityMiddleware(&middleware.SecurityConfig{
			MaxRequestSize:    5 * 1024 * 1024,
			RateLimitRequests: cfg.RateLimitRequests,
			RateLimitWindow:   time.Duration(cfg.RateLimitWindow) * time.Second,
		}))
	}

	// Optional artificial latency for frontend development parity
	if cfg.SimulatedLatencyMs > 0 {
		router.Use(middleware.SimulatedLatency(time.Duration(cfg.SimulatedLatencyMs) * time.Millisecond))
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Storefront API is running",
			"version": "1.0.0",
		})
	})

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTExpiration)
	authMiddleware := middleware.NewAuthMiddleware(authService)
	catalogService := services.NewCatalogService(db)
	cartService := services.NewCartService(db)
	ratingService := services.NewRatingService(db)
	orderService := services.NewOrderService(db)
	reviewService := services.NewReviewService(db)
	wishlistService := services.NewWishlistService(db)
	settingsService := services.NewSettingsService(db)
	newsletterService := services.NewNewsletterService(db)
	aiService := services.NewAIService(cfg)
	chatService := services.NewChatService(aiService)

	// Initialize handlers
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

	// API routes
	apiGroup := router.Group("/api/v1")
	{
		// Public storefront routes
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

		// AI marketing widgets
		apiGroup.GET("/chat/ws", chatService.HandleWebSocket)
		apiGroup.POST("/ai/generate-image", aiHandlers.GenerateImage)

		// Admin authentication
		apiGroup.POST("/auth/login", authHandlers.Login)
		apiGroup.POST("/auth/logout", authMiddleware.AuthRequired(), authHandlers.Logout)

		// Admin back-office routes
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

	// Start server with graceful shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Storefront API listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
