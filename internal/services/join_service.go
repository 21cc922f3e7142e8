package services

import (
	"errors"

	"aideal-backend/internal/database"
	"aideal-backend/internal/models"

	"gorm.io/gorm"
)

// GetJoinStatus returns the status of the caller's join request for a
// challenge. A missing request is not an error: it returns a nil status so
// the API can answer {"status": null}, distinguishing "never requested"
// from a lookup failure.
func GetJoinStatus(challengeID, userID uint) (*string, error) {
	var request models.JoinRequest
	err := database.DB.
		Where("challenge_id = ? AND user_id = ?", challengeID, userID).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request.Status, nil
}
