package models

import "time"

// Prompt is a saved AI prompt. RecommendedTools and Tips hold JSON arrays
// serialized into text columns; reads go through utils.ParseJSONSlice so a
// malformed stored value degrades to a fallback instead of failing the
// request.
type Prompt struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	Topic            string    `gorm:"not null" json:"topic"`
	Content          string    `gorm:"type:text;not null" json:"content"`
	RecommendedTools string    `gorm:"type:text" json:"-"`
	Tips             string    `gorm:"type:text" json:"-"`
	ImageURL         string    `json:"imageUrl"`
	IsPublic         bool      `gorm:"not null;default:false" json:"isPublic"`
	ParentID         *uint     `gorm:"index" json:"parentId,omitempty"`
	UserID           uint      `gorm:"index;not null" json:"userId"`
}
