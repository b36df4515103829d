package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"chaugames/backend/internal/auth"
	"chaugames/backend/internal/catalog"
	"chaugames/backend/internal/config"
	"chaugames/backend/internal/database"
	"chaugames/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "chaugames/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Chau Games API
// @version         1.0
// @description     This is the API for the Chau Games collection tracker.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	handler.Catalog = catalog.NewClient(
		config.AppConfig.MobyGamesBaseURL,
		config.AppConfig.MobyGamesAPIKey,
		time.Duration(config.AppConfig.MobyGamesTimeoutSeconds)*time.Second,
	)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// Public community routes; a token, when present, marks the
		// viewer's own entries in the feed.
		communityRoutes := apiV1.Group("/games/community")
		communityRoutes.Use(auth.OptionalAuthMiddleware())
		{
			communityRoutes.GET("", handler.GetCommunityFeed)
			communityRoutes.GET("/digest", handler.GetCommunityDigest)
		}

		// Game routes (protected)
		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(auth.AuthMiddleware())
		{
			gameRoutes.GET("/search", handler.SearchGames)
			gameRoutes.POST("", handler.AddGame)
			gameRoutes.GET("/collection", handler.GetCollection)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", handler.GetMe)
			userRoutes.GET("/me/display-name", handler.GetDisplayName)
			userRoutes.PUT("/me/display-name", handler.SetDisplayName)
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddr))
}
