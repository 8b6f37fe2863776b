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

// LeaderboardController ranks the caller and the users they follow by points
// earned inside a date range.
type LeaderboardController struct {
	db *gorm.DB
}

// NewLeaderboardController creates a new controller instance.
func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{db: db}
}

// leaderboardEntry is one ranked row.
type leaderboardEntry struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	TotalPoints int    `json:"total_points"`
}

// GetLeaderboard sums points_awarded over the resolved range for the caller
// and every user they follow. Users without logs in range score zero via the
// LEFT JOIN. Ties break on username so the order is deterministic.
func (l *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	rangeKind := ctx.DefaultQuery("range", utils.RangeWeekly)
	ref := time.Now()
	if v := strings.TrimSpace(ctx.Query("for_date")); v != "" {
		parsed, err := utils.ParseDate(v)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40051, "for_date must be YYYY-MM-DD")
			return
		}
		ref = parsed
	}
	start, end := utils.ResolveRange(rangeKind, ref)

	friendIDs := l.db.Model(&models.Friendship{}).
		Select("friend_id").
		Where("user_id = ?", userID)

	var entries []leaderboardEntry
	err := l.db.Model(&models.User{}).
		Select("users.id AS user_id, users.username, COALESCE(SUM(daily_task_logs.points_awarded), 0) AS total_points").
		Joins("LEFT JOIN daily_task_logs ON daily_task_logs.user_id = users.id AND daily_task_logs.date >= ? AND daily_task_logs.date <= ?",
			utils.FormatDate(start), utils.FormatDate(end)).
		Where("users.id = ? OR users.id IN (?)", userID, friendIDs).
		Group("users.id, users.username").
		Order("total_points DESC, users.username ASC").
		Scan(&entries).Error
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to compute leaderboard")
		return
	}

	utils.Success(ctx, entries)
}
