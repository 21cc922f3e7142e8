package growth

import (
	"net/http"

	"aideal-backend/internal/services"
	"aideal-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// PublicTopics godoc
// @Summary List public growth topics
// @Description Get the curated growth topics shown on the landing page, capped at 10
// @Tags growth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponse
// @Router /growth/topics/public [get]
func PublicTopics(c *gin.Context) {
	topics, err := services.ListPublicGrowthTopics()
	if err != nil {
		utils.RespondError(c, "PublicTopics", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
