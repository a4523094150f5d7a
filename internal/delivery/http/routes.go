package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Darlene250/amazon-explorer/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/meta", handler.Meta)
		v1.GET("/state", handler.GetState)

		session := v1.Group("/session")
		{
			session.POST("", handler.Login)
			session.GET("", handler.GetSession)
			session.DELETE("", handler.Logout)
		}

		v1.POST("/search", handler.Search)
		v1.GET("/products/:asin", handler.GetDetails)
	}

	return router
}
