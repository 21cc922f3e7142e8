package prompt

import "github.com/gin-gonic/gin"

// RegisterRoutes attaches admin prompt routes. The caller's group already
// carries AdminAuthMiddleware.
func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/prompts", ListPrompts)
}
