package services

import (
	"testing"

	"aideal-backend/internal/database"
	"aideal-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func seedChatRoom(t *testing.T, name string, members, messages int) models.ChatRoom {
	t.Helper()

	room := models.ChatRoom{Name: name, ChallengeID: 1}
	assert.NoError(t, database.DB.Create(&room).Error)

	for i := 0; i < members; i++ {
		member := models.ChatRoomMember{RoomID: room.ID, UserID: uint(i + 1)}
		assert.NoError(t, database.DB.Create(&member).Error)
	}
	for i := 0; i < messages; i++ {
		msg := models.ChatMessage{RoomID: room.ID, UserID: 1, Content: "hello"}
		assert.NoError(t, database.DB.Create(&msg).Error)
	}
	return room
}

func TestListChatRoomsIncludesCounts(t *testing.T) {
	setupTestDB()

	seedChatRoom(t, "room-a", 3, 5)
	seedChatRoom(t, "room-b", 0, 0)

	rooms, total, err := ListChatRooms(1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rooms, 2)

	byName := map[string]ChatRoomSummary{}
	for _, r := range rooms {
		byName[r.Name] = r
	}
	assert.Equal(t, int64(3), byName["room-a"].MemberCount)
	assert.Equal(t, int64(5), byName["room-a"].MessageCount)
	assert.Equal(t, int64(0), byName["room-b"].MemberCount)
	assert.Equal(t, int64(0), byName["room-b"].MessageCount)
}

func TestDeleteChatRoomCascades(t *testing.T) {
	setupTestDB()

	room := seedChatRoom(t, "doomed", 2, 4)
	keep := seedChatRoom(t, "kept", 1, 1)

	assert.NoError(t, DeleteChatRoom(room.ID))

	var rooms, members, messages int64
	database.DB.Model(&models.ChatRoom{}).Count(&rooms)
	database.DB.Model(&models.ChatRoomMember{}).Where("room_id = ?", room.ID).Count(&members)
	database.DB.Model(&models.ChatMessage{}).Where("room_id = ?", room.ID).Count(&messages)
	assert.Equal(t, int64(1), rooms)
	assert.Equal(t, int64(0), members)
	assert.Equal(t, int64(0), messages)

	// The other room keeps its dependents.
	database.DB.Model(&models.ChatRoomMember{}).Where("room_id = ?", keep.ID).Count(&members)
	assert.Equal(t, int64(1), members)
}

func TestDeleteChatRoomMissingID(t *testing.T) {
	setupTestDB()

	keep := seedChatRoom(t, "kept", 2, 2)

	err := DeleteChatRoom(99999)
	assert.ErrorIs(t, err, ErrNotFound)

	// No partial cascade happened.
	var members, messages int64
	database.DB.Model(&models.ChatRoomMember{}).Where("room_id = ?", keep.ID).Count(&members)
	database.DB.Model(&models.ChatMessage{}).Where("room_id = ?", keep.ID).Count(&messages)
	assert.Equal(t, int64(2), members)
	assert.Equal(t, int64(2), messages)
}
