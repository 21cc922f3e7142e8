package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"aideal-backend/config"
	"aideal-backend/internal/services"
	"aideal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRespondErrorMapping(t *testing.T) {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Unauthenticated", services.ErrUnauthenticated, http.StatusUnauthorized},
		{"Forbidden", fmt.Errorf("%w: admin role required", services.ErrForbidden), http.StatusForbidden},
		{"NotFound", fmt.Errorf("prompt 3: %w", services.ErrNotFound), http.StatusNotFound},
		{"Validation", fmt.Errorf("%w: topic is required", services.ErrValidation), http.StatusBadRequest},
		{"QuotaExceeded", services.ErrQuotaExceeded, http.StatusTooManyRequests},
		{"Unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			RespondError(c, "TestHandler", tt.err)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)

	config.App = &config.Config{AppEnv: "production"}
	t.Cleanup(func() { config.App = nil })

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondError(c, "TestHandler", errors.New("pq: relation \"prompts\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Query structure never reaches the client in production.
	assert.NotContains(t, w.Body.String(), "relation")
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestRespondErrorEchoesDetailInDevelopment(t *testing.T) {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)

	config.App = &config.Config{AppEnv: "development"}
	t.Cleanup(func() { config.App = nil })

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondError(c, "TestHandler", errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}
