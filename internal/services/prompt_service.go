package services

import (
	"errors"
	"fmt"
	"strings"

	"aideal-backend/internal/database"
	"aideal-backend/internal/models"

	"gorm.io/gorm"
)

// PublicPromptPageSize bounds the public listing.
const PublicPromptPageSize = 20

// CreatePromptInput carries the fields of a prompt save. RecommendedTools
// and Tips arrive already serialized by the handler's payload codec.
type CreatePromptInput struct {
	Topic            string
	Content          string
	RecommendedTools string
	Tips             string
	ImageURL         string
	IsPublic         bool
	ParentID         *uint
	UserID           uint
}

// CreatePrompt validates and stores a new prompt. Nothing is written when
// validation fails.
func CreatePrompt(input CreatePromptInput) (*models.Prompt, error) {
	if strings.TrimSpace(input.Topic) == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrValidation)
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: prompt content is required", ErrValidation)
	}

	if input.ParentID != nil {
		var parent models.Prompt
		if err := database.DB.Select("id").First(&parent, *input.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: parent prompt %d does not exist", ErrValidation, *input.ParentID)
			}
			return nil, err
		}
	}

	prompt := &models.Prompt{
		Topic:            input.Topic,
		Content:          input.Content,
		RecommendedTools: input.RecommendedTools,
		Tips:             input.Tips,
		ImageURL:         input.ImageURL,
		IsPublic:         input.IsPublic,
		ParentID:         input.ParentID,
		UserID:           input.UserID,
	}

	if err := database.DB.Create(prompt).Error; err != nil {
		return nil, err
	}

	return prompt, nil
}

// FindPromptByID returns a single prompt or ErrNotFound.
func FindPromptByID(id uint) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := database.DB.First(&prompt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("prompt %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &prompt, nil
}

// FindPublicPrompts lists root prompts marked public, newest first.
// Refinements (prompts with a parent) never appear here.
func FindPublicPrompts(limit int) ([]models.Prompt, error) {
	if limit <= 0 || limit > PublicPromptPageSize {
		limit = PublicPromptPageSize
	}

	var prompts []models.Prompt
	err := database.DB.
		Where("parent_id IS NULL AND is_public = ?", true).
		Order("created_at desc").
		Limit(limit).
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

// ListAllPrompts retrieves a paginated list of every prompt, for the admin
// panel.
func ListAllPrompts(page, pageSize int) ([]models.Prompt, int64, error) {
	var prompts []models.Prompt
	var total int64

	db := database.DB.Model(&models.Prompt{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Order("created_at desc").Offset(offset).Limit(pageSize).Find(&prompts).Error; err != nil {
		return nil, 0, err
	}

	return prompts, total, nil
}
