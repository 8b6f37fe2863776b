package models

import "time"

// Task is a catalog entry users can complete once per day. The default set is
// seeded at first startup; administrators may add rows out of band.
//
// IsActive carries no column default: gorm drops a plain false bool from the
// INSERT, so a default of true would make inactive rows impossible to create.
// Every insert site sets the flag explicitly.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Code        string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Description string    `gorm:"size:255" json:"description"`
	Points      int       `gorm:"not null;default:0" json:"points"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
