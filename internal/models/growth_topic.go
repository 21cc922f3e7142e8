package models

import (
	"time"

	"gorm.io/datatypes"
)

// GrowthTopic is a curated self-improvement topic surfaced on the public
// landing page. Rows are maintained by operators; this backend only lists
// them.
type GrowthTopic struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Progress    int            `gorm:"default:0" json:"progress"`
	Level       int            `gorm:"default:1" json:"level"`
	Duration    int            `json:"duration"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags" swaggertype:"object"`
	IsPublic    bool           `gorm:"not null;default:false" json:"isPublic"`
}
