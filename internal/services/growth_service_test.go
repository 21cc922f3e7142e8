package services

import (
	"fmt"
	"testing"

	"aideal-backend/internal/database"
	"aideal-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestListPublicGrowthTopics(t *testing.T) {
	setupTestDB()

	for i := 0; i < GrowthTopicPageSize+3; i++ {
		topic := models.GrowthTopic{
			Title:    fmt.Sprintf("topic-%d", i),
			Level:    i%3 + 1,
			IsPublic: true,
		}
		assert.NoError(t, database.DB.Create(&topic).Error)
	}
	hidden := models.GrowthTopic{Title: "draft", IsPublic: false}
	assert.NoError(t, database.DB.Create(&hidden).Error)

	topics, err := ListPublicGrowthTopics()
	assert.NoError(t, err)
	assert.Len(t, topics, GrowthTopicPageSize)
	for _, topic := range topics {
		assert.True(t, topic.IsPublic)
		assert.NotEqual(t, "draft", topic.Title)
	}
}
