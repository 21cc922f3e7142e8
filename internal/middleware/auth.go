package middleware

import (
	"fmt"

	"aideal-backend/internal/models"
	"aideal-backend/internal/services"
	"aideal-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// resolveIdentity validates the bearer token and re-reads the user row from
// the database. The role is never trusted from the token claims: a demoted
// admin loses access on their next request.
func resolveIdentity(c *gin.Context) (models.User, error) {
	tokenString, err := utils.ExtractToken(c)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", services.ErrUnauthenticated, err)
	}

	isDenylisted, err := services.IsDenylisted(tokenString)
	if err != nil {
		return models.User{}, fmt.Errorf("checking token denylist: %v", err)
	}
	if isDenylisted {
		return models.User{}, fmt.Errorf("%w: token has been revoked", services.ErrUnauthenticated)
	}

	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: invalid or expired token", services.ErrUnauthenticated)
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return models.User{}, fmt.Errorf("%w: invalid user ID in token", services.ErrUnauthenticated)
	}

	user, err := services.FindUserByID(uint(userIDFloat))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: user not found", services.ErrUnauthenticated)
	}

	return user, nil
}

// AuthMiddleware resolves the caller's identity and stores it in the
// request context. Requests without a valid session are rejected with 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveIdentity(c)
		if err != nil {
			utils.AbortWithError(c, "AuthMiddleware", err)
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
