package services

import (
	"aideal-backend/internal/database"
	"aideal-backend/internal/models"
)

// GrowthTopicPageSize bounds the public growth topic listing.
const GrowthTopicPageSize = 10

// ListPublicGrowthTopics returns the curated public topics, capped at
// GrowthTopicPageSize.
func ListPublicGrowthTopics() ([]models.GrowthTopic, error) {
	var topics []models.GrowthTopic
	err := database.DB.
		Where("is_public = ?", true).
		Order("level asc, created_at desc").
		Limit(GrowthTopicPageSize).
		Find(&topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}
