package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"aideal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const msgBadRequest = "요청 형식이 올바르지 않습니다."

// BindAndValidate binds the request body to the given object and validates it.
// If validation fails, it sends a 400 with the localized message and returns
// false; the field-level detail goes to the log only.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var details []string
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			switch e.Tag() {
			case "required":
				details = append(details, fmt.Sprintf("field '%s' is required", e.Field()))
			case "min":
				details = append(details, fmt.Sprintf("field '%s' must be at least %s characters", e.Field(), e.Param()))
			case "max":
				details = append(details, fmt.Sprintf("field '%s' must be at most %s characters", e.Field(), e.Param()))
			default:
				details = append(details, fmt.Sprintf("field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
			}
		}
	} else if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		details = append(details, fmt.Sprintf("field '%s' has invalid type, expected %s", jsonErr.Field, jsonErr.Type.String()))
	} else {
		details = append(details, "malformed JSON body")
	}

	logger.Log.Warn("request validation failed",
		zap.String("path", c.Request.URL.Path),
		zap.Strings("details", details),
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgBadRequest})
	return false
}
