package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"options-tracker/config"
	"options-tracker/handlers"
	"options-tracker/middleware"
	"options-tracker/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Initialize PostgreSQL and Redis connections.
	config.InitDB()
	config.InitRedis()

	sqlDB, err := config.DB.DB()
	if err != nil {
		log.Fatal("Failed to get database instance: ", err)
	}
	defer sqlDB.Close()

	// Auto-migrate models.
	if err := config.DB.AutoMigrate(&models.User{}, &models.Trade{}, &models.CashAccount{}); err != nil {
		log.Fatal("Failed to migrate models:", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public routes
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.POST("/refresh", handlers.Refresh)
		auth.POST("/logout", handlers.Logout)
	}

	// Protected routes
	api := router.Group("/api")
	api.Use(middleware.JWTAuth())
	{
		api.GET("/auth/me", handlers.Me)

		api.POST("/portfolio/trades", handlers.CreateTrade)
		api.GET("/portfolio/trades", handlers.GetTrades)
		api.GET("/portfolio/trades/open", handlers.GetOpenTrades)
		api.GET("/portfolio/trades/:id", handlers.GetTrade)
		api.PUT("/portfolio/trades/:id", handlers.UpdateTrade)
		api.PATCH("/portfolio/trades/:id/status", handlers.UpdateTradeStatus)
		api.DELETE("/portfolio/trades/:id", handlers.DeleteTrade)
		api.GET("/portfolio/summary", handlers.GetPortfolioSummary)

		api.GET("/usercash", handlers.GetCash)
		api.PUT("/usercash/cash", handlers.UpdateCash)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
