package prompt

import "time"

type SavePromptRequest struct {
	Topic            string   `json:"topic" binding:"required"`
	Prompt           string   `json:"prompt" binding:"required"`
	RecommendedTools []string `json:"recommendedTools"`
	Tips             []string `json:"tips"`
	ImageURL         string   `json:"imageUrl"`
	IsPublic         bool     `json:"isPublic"`
	ParentID         *uint    `json:"parentId"`
}

// SavedPrompt is the public-safe projection echoed after a save. The full
// content is deliberately not included.
type SavedPrompt struct {
	ID        uint      `json:"id"`
	Topic     string    `json:"topic"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type PromptDetail struct {
	ID               uint      `json:"id"`
	Topic            string    `json:"topic"`
	Content          string    `json:"content"`
	RecommendedTools []string  `json:"recommendedTools"`
	Tips             []string  `json:"tips"`
	ImageURL         string    `json:"imageUrl"`
	IsPublic         bool      `json:"isPublic"`
	ParentID         *uint     `json:"parentId"`
	CreatedAt        time.Time `json:"createdAt"`
}

type PublicPromptItem struct {
	ID        uint      `json:"id"`
	Topic     string    `json:"topic"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}
