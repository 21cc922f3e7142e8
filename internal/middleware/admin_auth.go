package middleware

import (
	"aideal-backend/internal/services"
	"aideal-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware resolves the caller's identity and additionally
// requires the stored admin role. Non-admin callers get 403.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveIdentity(c)
		if err != nil {
			utils.AbortWithError(c, "AdminAuthMiddleware", err)
			return
		}

		if err := services.RequireAdmin(&user); err != nil {
			utils.AbortWithError(c, "AdminAuthMiddleware", err)
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
