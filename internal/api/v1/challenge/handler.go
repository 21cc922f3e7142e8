package challenge

import (
	"net/http"
	"strconv"

	"aideal-backend/internal/services"
	"aideal-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// JoinStatus godoc
// @Summary Get the caller's join status for a challenge
// @Description Returns the join request status, or null when the user never requested to join
// @Tags challenges
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Challenge ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /challenges/{id}/join-status [get]
func JoinStatus(c *gin.Context) {
	user, exists := utils.CurrentUser(c)
	if !exists {
		utils.RespondError(c, "JoinStatus", services.ErrUnauthenticated)
		return
	}

	challengeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, "JoinStatus", services.ErrNotFound)
		return
	}

	status, err := services.GetJoinStatus(uint(challengeID), user.ID)
	if err != nil {
		utils.RespondError(c, "JoinStatus", err)
		return
	}

	// status is nil when no request exists; the client sees {"status": null}.
	c.JSON(http.StatusOK, gin.H{"status": status})
}
