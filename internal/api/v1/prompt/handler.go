package prompt

import (
	"net/http"
	"strconv"

	"aideal-backend/internal/models"
	"aideal-backend/internal/services"
	"aideal-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// PublicPrompts godoc
// @Summary List public prompts
// @Description Get the newest public root prompts, capped at 20
// @Tags prompts
// @Produce json
// @Success 200 {object} map[string][]prompt.PublicPromptItem
// @Failure 500 {object} utils.ErrorResponse
// @Router /prompts/public [get]
func PublicPrompts(c *gin.Context) {
	prompts, err := services.FindPublicPrompts(services.PublicPromptPageSize)
	if err != nil {
		utils.RespondError(c, "PublicPrompts", err)
		return
	}

	items := make([]PublicPromptItem, 0, len(prompts))
	for _, p := range prompts {
		items = append(items, PublicPromptItem{
			ID:        p.ID,
			Topic:     p.Topic,
			Content:   p.Content,
			ImageURL:  p.ImageURL,
			CreatedAt: p.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"prompts": items})
}

// GetPrompt godoc
// @Summary Get a prompt by id
// @Description Get one of the caller's prompts with decoded tool and tip lists
// @Tags prompts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Prompt ID"
// @Success 200 {object} map[string]prompt.PromptDetail
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /prompts/{id} [get]
func GetPrompt(c *gin.Context) {
	user, exists := utils.CurrentUser(c)
	if !exists {
		utils.RespondError(c, "GetPrompt", services.ErrUnauthenticated)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, "GetPrompt", services.ErrNotFound)
		return
	}

	// Existence before ownership: a missing prompt is 404 even for a
	// caller who would not have owned it.
	p, err := services.FindPromptByID(uint(id))
	if err != nil {
		utils.RespondError(c, "GetPrompt", err)
		return
	}

	if err := services.RequireOwner(&user, p.UserID); err != nil {
		utils.RespondError(c, "GetPrompt", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"prompt": toDetail(p)})
}

// SavePrompt godoc
// @Summary Save a generated prompt
// @Description Store a prompt for the authenticated user
// @Tags prompts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body prompt.SavePromptRequest true "Save Prompt Request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /prompts/save [post]
func SavePrompt(c *gin.Context) {
	user, exists := utils.CurrentUser(c)
	if !exists {
		utils.RespondError(c, "SavePrompt", services.ErrUnauthenticated)
		return
	}

	var req SavePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	created, err := services.CreatePrompt(services.CreatePromptInput{
		Topic:            utils.SanitizeText(req.Topic),
		Content:          utils.SanitizeText(req.Prompt),
		RecommendedTools: utils.MarshalJSONOrDefault(req.RecommendedTools),
		Tips:             utils.MarshalJSONOrDefault(req.Tips),
		ImageURL:         req.ImageURL,
		IsPublic:         req.IsPublic,
		ParentID:         req.ParentID,
		UserID:           user.ID,
	})
	if err != nil {
		utils.RespondError(c, "SavePrompt", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"prompt": SavedPrompt{
			ID:        created.ID,
			Topic:     created.Topic,
			ImageURL:  created.ImageURL,
			CreatedAt: created.CreatedAt,
		},
	})
}

func toDetail(p *models.Prompt) PromptDetail {
	return PromptDetail{
		ID:               p.ID,
		Topic:            p.Topic,
		Content:          p.Content,
		RecommendedTools: utils.ParseJSONSlice(p.RecommendedTools, []string{}),
		Tips:             utils.ParseJSONSlice(p.Tips, []string{}),
		ImageURL:         p.ImageURL,
		IsPublic:         p.IsPublic,
		ParentID:         p.ParentID,
		CreatedAt:        p.CreatedAt,
	}
}
