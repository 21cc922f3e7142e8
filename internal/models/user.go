package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the account row referenced by prompt ownership and role checks.
// Accounts and credentials are provisioned by the external auth service;
// this backend only reads them.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Role      string    `gorm:"not null;default:'user'" json:"role"`
}
