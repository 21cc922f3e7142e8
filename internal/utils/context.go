package utils

import (
	"aideal-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the identity resolved by the auth middleware for this
// request, if any.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}
