package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SID01AV/productivity-tracker/models"
	"github.com/SID01AV/productivity-tracker/utils"
)

// TaskController serves the task catalog and the per-day task view.
type TaskController struct {
	db *gorm.DB
}

// NewTaskController creates a new controller instance.
func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{db: db}
}

// ListTasks returns the catalog ordered by id. Inactive tasks are hidden
// unless include_inactive=true.
func (t *TaskController) ListTasks(ctx *gin.Context) {
	query := t.db.Model(&models.Task{})
	if !strings.EqualFold(ctx.Query("include_inactive"), "true") {
		query = query.Where("is_active = ?", true)
	}

	var tasks []models.Task
	if err := query.Order("id").Find(&tasks).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to list tasks")
		return
	}

	utils.Success(ctx, tasks)
}

// dailyTaskEntry is one active task joined with the caller's log for a date.
type dailyTaskEntry struct {
	Task          models.Task `json:"task"`
	Date          string      `json:"date"`
	Completed     bool        `json:"completed"`
	PointsAwarded int         `json:"points_awarded"`
}

// DailyTasks returns every active task with the user's completion state for
// the requested date, defaulting to not-completed when no log row exists.
// Purely a read: viewing never creates log rows.
func (t *TaskController) DailyTasks(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	targetDate := utils.FormatDate(time.Now())
	if v := strings.TrimSpace(ctx.Query("for_date")); v != "" {
		parsed, err := utils.ParseDate(v)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40021, "for_date must be YYYY-MM-DD")
			return
		}
		targetDate = utils.FormatDate(parsed)
	}

	var tasks []models.Task
	if err := t.db.Where("is_active = ?", true).Order("id").Find(&tasks).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to list tasks")
		return
	}

	var logs []models.DailyTaskLog
	if err := t.db.Where("user_id = ? AND date = ?", userID, targetDate).Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to load logs")
		return
	}
	logsByTaskID := make(map[uint]models.DailyTaskLog, len(logs))
	for _, l := range logs {
		logsByTaskID[l.TaskID] = l
	}

	entries := make([]dailyTaskEntry, 0, len(tasks))
	for _, task := range tasks {
		entry := dailyTaskEntry{Task: task, Date: targetDate}
		if l, ok := logsByTaskID[task.ID]; ok {
			entry.Completed = l.Completed
			entry.PointsAwarded = l.PointsAwarded
		}
		entries = append(entries, entry)
	}

	utils.Success(ctx, entries)
}
