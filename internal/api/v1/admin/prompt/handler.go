package prompt

import (
	"net/http"
	"strconv"

	"aideal-backend/internal/services"
	"aideal-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListPrompts godoc
// @Summary List all prompts
// @Description Get a paginated list of every stored prompt for moderation
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /admin/prompts [get]
func ListPrompts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	prompts, total, err := services.ListAllPrompts(page, limit)
	if err != nil {
		utils.RespondError(c, "Admin.ListPrompts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prompts": prompts,
		"total":   total,
	})
}
