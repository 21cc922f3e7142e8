package growth

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	topics := router.Group("/growth/topics")
	topics.GET("/public", PublicTopics)
}
