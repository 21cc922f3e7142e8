package services

import (
	"errors"
	"fmt"
	"time"

	"aideal-backend/internal/database"
	"aideal-backend/internal/models"

	"gorm.io/gorm"
)

// ChatRoomSummary is a chat room row with its dependent counts, as shown
// in the admin panel.
type ChatRoomSummary struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Name         string    `json:"name"`
	ChallengeID  uint      `json:"challengeId"`
	MemberCount  int64     `json:"memberCount"`
	MessageCount int64     `json:"messageCount"`
}

// ListChatRooms retrieves a paginated admin listing with member and message
// counts resolved in a single query.
func ListChatRooms(page, pageSize int) ([]ChatRoomSummary, int64, error) {
	var total int64
	if err := database.DB.Model(&models.ChatRoom{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rooms []ChatRoomSummary
	offset := (page - 1) * pageSize
	err := database.DB.Model(&models.ChatRoom{}).
		Select("chat_rooms.id, chat_rooms.created_at, chat_rooms.name, chat_rooms.challenge_id, " +
			"(SELECT COUNT(*) FROM chat_room_members WHERE chat_room_members.room_id = chat_rooms.id) AS member_count, " +
			"(SELECT COUNT(*) FROM chat_messages WHERE chat_messages.room_id = chat_rooms.id) AS message_count").
		Order("chat_rooms.created_at desc").
		Offset(offset).
		Limit(pageSize).
		Scan(&rooms).Error
	if err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

// DeleteChatRoom removes a room together with its members and messages.
// The cascade runs in one transaction: either everything goes or nothing
// does. A nonexistent id is ErrNotFound, not a silent success.
func DeleteChatRoom(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var room models.ChatRoom
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("chat room %d: %w", id, ErrNotFound)
			}
			return err
		}

		if err := tx.Where("room_id = ?", id).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.ChatRoomMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&room).Error
	})
}
