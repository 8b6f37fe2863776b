package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SID01AV/productivity-tracker/models"
	"github.com/SID01AV/productivity-tracker/utils"
)

// LogController handles the daily task completion upsert.
type LogController struct {
	db *gorm.DB
}

var errTaskNotFound = errors.New("task not found")

// NewLogController creates a new controller instance.
func NewLogController(db *gorm.DB) *LogController {
	return &LogController{db: db}
}

// UpsertDailyLog ensures exactly one log row exists for the caller's
// (task, date) pair with the given completion state. points_awarded is always
// recomputed from the current task definition: task.Points when completed,
// zero otherwise. A concurrent writer losing the race against the unique
// index gets "could not save log" rather than a second row.
func (l *LogController) UpsertDailyLog(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		TaskID    uint   `json:"task_id" binding:"required"`
		Date      string `json:"date" binding:"required"`
		Completed *bool  `json:"completed" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid request payload")
		return
	}
	parsed, err := utils.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40032, "date must be YYYY-MM-DD")
		return
	}
	date := utils.FormatDate(parsed)
	completed := *req.Completed

	var saved models.DailyTaskLog
	err = l.db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.First(&task, req.TaskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errTaskNotFound
			}
			return err
		}
		if !task.IsActive {
			return errTaskNotFound
		}

		points := 0
		if completed {
			points = task.Points
		}

		var log models.DailyTaskLog
		err := tx.Where("user_id = ? AND task_id = ? AND date = ?", userID, req.TaskID, date).First(&log).Error
		switch {
		case err == nil:
			log.Completed = completed
			log.PointsAwarded = points
			if err := tx.Save(&log).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			log = models.DailyTaskLog{
				UserID:        userID,
				TaskID:        req.TaskID,
				Date:          date,
				Completed:     completed,
				PointsAwarded: points,
			}
			if err := tx.Create(&log).Error; err != nil {
				return err
			}
		default:
			return err
		}

		log.Task = task
		saved = log
		return nil
	})

	if err != nil {
		if errors.Is(err, errTaskNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40430, "task not found")
			return
		}
		if isDuplicateKeyErr(err) {
			utils.Error(ctx, http.StatusBadRequest, 40033, "could not save log")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to save log")
		return
	}

	utils.Success(ctx, saved)
}
