package usage_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"aideal-backend/config"
	"aideal-backend/internal/api/v1/usage"
	"aideal-backend/internal/database"
	"aideal-backend/internal/models"
	"aideal-backend/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupTestRedis() *miniredis.Miniredis {
	logger.Log = zap.NewNop()

	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func recordCopy(user models.User) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/usage/prompt-copy", nil)
	c.Set("user", user)

	usage.RecordPromptCopy(c)
	return w
}

func TestRecordPromptCopyQuota(t *testing.T) {
	mr := setupTestRedis()
	defer mr.Close()

	config.App = &config.Config{PromptCopyDailyLimit: 2}
	t.Cleanup(func() { config.App = nil })

	gin.SetMode(gin.TestMode)
	user := models.User{ID: 1, Username: "dana"}

	w := recordCopy(user)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	w = recordCopy(user)
	assert.Equal(t, http.StatusOK, w.Code)

	// Third copy of the day exceeds the limit.
	w = recordCopy(user)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "error")

	// A different user is unaffected.
	w = recordCopy(models.User{ID: 2, Username: "minji"})
	assert.Equal(t, http.StatusOK, w.Code)
}
