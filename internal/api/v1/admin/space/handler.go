package space

import (
	"net/http"
	"strconv"

	"aideal-backend/internal/services"
	"aideal-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListChatRooms godoc
// @Summary List chat rooms
// @Description Get a paginated list of chat rooms with member and message counts
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /admin/spaces [get]
func ListChatRooms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	rooms, total, err := services.ListChatRooms(page, limit)
	if err != nil {
		utils.RespondError(c, "Admin.ListChatRooms", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chatRooms": rooms,
		"total":     total,
	})
}

// DeleteChatRoom godoc
// @Summary Delete a chat room
// @Description Remove a chat room and all of its members and messages
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Chat Room ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /admin/spaces/{id} [delete]
func DeleteChatRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, "Admin.DeleteChatRoom", services.ErrNotFound)
		return
	}

	if err := services.DeleteChatRoom(uint(id)); err != nil {
		utils.RespondError(c, "Admin.DeleteChatRoom", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
