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

// StatsController summarizes the caller's own points over a date range.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// statsByDate is one day's summed points. Days with no logs are omitted.
type statsByDate struct {
	Date   string `json:"date"`
	Points int    `json:"points"`
}

// GetSummary returns the resolved range, the total over all logs in range,
// and a sparse per-date breakdown ordered by date ascending.
func (s *StatsController) GetSummary(ctx *gin.Context) {
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
			utils.Error(ctx, http.StatusBadRequest, 40061, "for_date must be YYYY-MM-DD")
			return
		}
		ref = parsed
	}
	start, end := utils.ResolveRange(rangeKind, ref)
	startStr, endStr := utils.FormatDate(start), utils.FormatDate(end)

	inRange := s.db.Model(&models.DailyTaskLog{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startStr, endStr)

	var totalPoints int
	if err := inRange.Session(&gorm.Session{}).
		Select("COALESCE(SUM(points_awarded), 0)").
		Scan(&totalPoints).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to compute totals")
		return
	}

	var byDate []statsByDate
	if err := inRange.Session(&gorm.Session{}).
		Select("date, COALESCE(SUM(points_awarded), 0) AS points").
		Group("date").
		Order("date ASC").
		Scan(&byDate).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to compute breakdown")
		return
	}
	if byDate == nil {
		byDate = []statsByDate{}
	}

	utils.Success(ctx, gin.H{
		"range":        rangeKind,
		"start_date":   startStr,
		"end_date":     endStr,
		"total_points": totalPoints,
		"by_date":      byDate,
	})
}
