package config

import (
	"gorm.io/gorm"

	"github.com/SID01AV/productivity-tracker/models"
)

// SeedDefaultTasks inserts the default task catalog when the tasks table is
// empty. Guarded by the row count, so running it on every boot is idempotent.
func SeedDefaultTasks(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Task{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Task{
		{
			Name:        "Wake up on time",
			Code:        "wake_up",
			Description: "Wake up at your planned time",
			Points:      10,
			IsActive:    true,
		},
		{
			Name:        "2 hours work/study",
			Code:        "work_2h",
			Description: "Focus on work or study for at least 2 hours",
			Points:      20,
			IsActive:    true,
		},
		{
			Name:        "30 min workout",
			Code:        "workout_30m",
			Description: "Do at least 30 minutes of exercise",
			Points:      15,
			IsActive:    true,
		},
	}
	return db.Create(&defaults).Error
}
