package prompt

import (
	"aideal-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	prompts := router.Group("/prompts")
	prompts.GET("/public", PublicPrompts)
	prompts.GET("/:id", middleware.AuthMiddleware(), GetPrompt)
	prompts.POST("/save", middleware.AuthMiddleware(), SavePrompt)
}
