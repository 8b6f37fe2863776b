package models

import "time"

// User represents a tracker account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        *string   `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`

	DailyLogs   []DailyTaskLog `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Friendships []Friendship   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	FriendOf    []Friendship   `gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE" json:"-"`
}
