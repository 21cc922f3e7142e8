package challenge

import (
	"aideal-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	challenges := router.Group("/challenges")
	challenges.GET("/:id/join-status", middleware.AuthMiddleware(), JoinStatus)
}
