package models

import "time"

// Friendship is a directed edge: the owner follows the friend on leaderboards.
// Mutual friendship is two separate rows. Self-loops are rejected upstream.
type Friendship struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uix_user_friend" json:"user_id"`
	FriendID  uint      `gorm:"not null;uniqueIndex:uix_user_friend" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`

	Friend User `gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE" json:"friend"`
}
