package services

import (
	"testing"

	"aideal-backend/internal/database"
	"aideal-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGetJoinStatusNoRequest(t *testing.T) {
	setupTestDB()

	status, err := GetJoinStatus(1, 42)
	assert.NoError(t, err)
	assert.Nil(t, status)
}

func TestGetJoinStatusExisting(t *testing.T) {
	setupTestDB()

	request := models.JoinRequest{ChallengeID: 1, UserID: 42, Status: models.JoinStatusApproved}
	assert.NoError(t, database.DB.Create(&request).Error)

	status, err := GetJoinStatus(1, 42)
	assert.NoError(t, err)
	if assert.NotNil(t, status) {
		assert.Equal(t, models.JoinStatusApproved, *status)
	}

	// Another user on the same challenge still has no request.
	status, err = GetJoinStatus(1, 43)
	assert.NoError(t, err)
	assert.Nil(t, status)
}
