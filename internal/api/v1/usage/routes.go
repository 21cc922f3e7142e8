package usage

import (
	"aideal-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/usage/prompt-copy", middleware.AuthMiddleware(), RecordPromptCopy)
}
