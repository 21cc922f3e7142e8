package usage

import (
	"net/http"

	"aideal-backend/config"
	"aideal-backend/internal/services"
	"aideal-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// RecordPromptCopy godoc
// @Summary Record a prompt copy
// @Description Count one prompt copy against the caller's daily quota
// @Tags usage
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Router /usage/prompt-copy [post]
func RecordPromptCopy(c *gin.Context) {
	user, exists := utils.CurrentUser(c)
	if !exists {
		utils.RespondError(c, "RecordPromptCopy", services.ErrUnauthenticated)
		return
	}

	if err := services.EnsurePromptCopyAllowed(user.ID, config.App.PromptCopyDailyLimit); err != nil {
		utils.RespondError(c, "RecordPromptCopy", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
