package models

import "time"

// JoinStatus values for a challenge join request.
const (
	JoinStatusPending  = "pending"
	JoinStatusApproved = "approved"
	JoinStatusRejected = "rejected"
)

type Challenge struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Title     string    `gorm:"not null" json:"title"`
}

// JoinRequest records a user's request to join a challenge. At most one
// request exists per (challenge, user) pair.
type JoinRequest struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	ChallengeID uint      `gorm:"uniqueIndex:idx_join_challenge_user;not null" json:"challengeId"`
	UserID      uint      `gorm:"uniqueIndex:idx_join_challenge_user;not null" json:"userId"`
	Status      string    `gorm:"not null;default:'pending'" json:"status"`
}
