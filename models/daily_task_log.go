package models

import "time"

// DailyTaskLog stores one row per (user, task, date). PointsAwarded snapshots
// the task's point value at write time so later catalog edits do not rewrite
// history. Date is an ISO YYYY-MM-DD string; lexical order equals date order.
type DailyTaskLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:uix_user_task_date" json:"user_id"`
	TaskID        uint      `gorm:"not null;uniqueIndex:uix_user_task_date" json:"task_id"`
	Date          string    `gorm:"size:10;not null;uniqueIndex:uix_user_task_date;index" json:"date"`
	Completed     bool      `gorm:"not null;default:false" json:"completed"`
	PointsAwarded int       `gorm:"not null;default:0" json:"points_awarded"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Task Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"task"`
}
