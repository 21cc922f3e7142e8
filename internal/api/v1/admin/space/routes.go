package space

import "github.com/gin-gonic/gin"

// RegisterRoutes attaches admin chat room routes. The caller's group
// already carries AdminAuthMiddleware.
func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/spaces", ListChatRooms)
	router.DELETE("/spaces/:id", DeleteChatRoom)
}
