package prompt_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	adminPrompt "aideal-backend/internal/api/v1/admin/prompt"
	"aideal-backend/internal/database"
	"aideal-backend/internal/models"
	"aideal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB() {
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to connect database: %v", err))
	}
	if err := db.AutoMigrate(&models.Prompt{}); err != nil {
		panic("failed to migrate database")
	}
	database.DB = db
}

func TestListPrompts(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	for i := 0; i < 3; i++ {
		p := models.Prompt{Topic: fmt.Sprintf("t-%d", i), Content: "c", UserID: uint(i + 1)}
		assert.NoError(t, database.DB.Create(&p).Error)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/admin/prompts?page=1&limit=2", nil)

	adminPrompt.ListPrompts(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Prompts []models.Prompt `json:"prompts"`
		Total   int64           `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Total)
	assert.Len(t, resp.Prompts, 2)
}
