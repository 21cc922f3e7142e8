package utils

import (
	"errors"
	"net/http"

	"aideal-backend/config"
	"aideal-backend/internal/services"
	"aideal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the uniform failure envelope. Messages are user-facing
// Korean strings; internal detail stays in the server log.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

const (
	msgUnauthenticated = "로그인이 필요합니다."
	msgForbidden       = "접근 권한이 없습니다."
	msgNotFound        = "요청하신 정보를 찾을 수 없습니다."
	msgValidation      = "필수 입력값이 누락되었거나 올바르지 않습니다."
	msgQuotaExceeded   = "오늘 사용 가능한 횟수를 모두 사용했습니다."
	msgInternal        = "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해 주세요."
)

// RespondError maps a service error onto the failure envelope. Anything
// outside the known taxonomy is treated as unexpected: logged with the
// handler name and surfaced as a generic 500. Raw error detail is echoed
// to the client only in development.
func RespondError(c *gin.Context, handler string, err error) {
	status := http.StatusInternalServerError
	message := msgInternal

	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		status = http.StatusUnauthorized
		message = msgUnauthenticated
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
		message = msgForbidden
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
		message = msgNotFound
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
		message = msgValidation
	case errors.Is(err, services.ErrQuotaExceeded):
		status = http.StatusTooManyRequests
		message = msgQuotaExceeded
	}

	if status == http.StatusInternalServerError {
		logger.Log.Error("unexpected handler failure",
			zap.String("handler", handler),
			zap.Error(err),
		)
	}

	resp := ErrorResponse{Error: message}
	if status == http.StatusInternalServerError && config.App != nil && config.App.IsDevelopment() {
		resp.Detail = err.Error()
	}

	c.JSON(status, resp)
}

// AbortWithError is RespondError for middleware: it also stops the chain so
// no handler runs after a failed auth check.
func AbortWithError(c *gin.Context, handler string, err error) {
	RespondError(c, handler, err)
	c.Abort()
}
