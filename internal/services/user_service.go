package services

import (
	"errors"
	"fmt"

	"aideal-backend/internal/database"
	"aideal-backend/internal/models"

	"gorm.io/gorm"
)

// FindUserByID loads the user row for an authenticated request. The lookup
// deliberately skips any cache: role changes must take effect on the next
// request.
func FindUserByID(userID uint) (models.User, error) {
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return user, err
	}
	return user, nil
}
