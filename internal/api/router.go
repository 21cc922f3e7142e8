package api

import (
	"aideal-backend/config"
	adminPrompt "aideal-backend/internal/api/v1/admin/prompt"
	adminSpace "aideal-backend/internal/api/v1/admin/space"
	"aideal-backend/internal/api/v1/challenge"
	"aideal-backend/internal/api/v1/growth"
	"aideal-backend/internal/api/v1/prompt"
	"aideal-backend/internal/api/v1/usage"
	"aideal-backend/internal/database"
	"aideal-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := database.Connect(cfg.DSN()); err != nil {
		return nil, err
	}
	if err := database.ConnectRedis(cfg); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1
	v1 := router.Group("/api/v1")
	{
		prompt.RegisterRoutes(v1)
		growth.RegisterRoutes(v1)
		challenge.RegisterRoutes(v1)
		usage.RegisterRoutes(v1)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminPrompt.RegisterRoutes(admin)
			adminSpace.RegisterRoutes(admin)
		}
	}

	return router, nil
}
