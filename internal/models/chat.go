package models

import "time"

// ChatRoom is the shared space attached to a challenge. Members and
// messages hang off it and are removed together when an admin deletes
// the room.
type ChatRoom struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Name        string    `gorm:"not null" json:"name"`
	ChallengeID uint      `gorm:"index;not null" json:"challengeId"`
}

type ChatRoomMember struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	RoomID    uint      `gorm:"index;not null" json:"roomId"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
}

type ChatMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	RoomID    uint      `gorm:"index;not null" json:"roomId"`
	UserID    uint      `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
}
