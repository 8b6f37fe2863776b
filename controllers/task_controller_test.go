package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SID01AV/productivity-tracker/models"
)

func TestListTasksFiltersInactive(t *testing.T) {
	r, db := newTestRouter(t)
	token, _ := registerAndLogin(t, r, "alice")

	retired := models.Task{Name: "Old habit", Code: "old_habit", Points: 5, IsActive: false}
	require.NoError(t, db.Create(&retired).Error)

	// The inactive flag must survive the insert as written.
	var stored models.Task
	require.NoError(t, db.First(&stored, retired.ID).Error)
	require.False(t, stored.IsActive)

	w, env := doJSON(t, r, http.MethodGet, "/api/tasks", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []models.Task
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	require.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.True(t, task.IsActive)
	}

	w, env = doJSON(t, r, http.MethodGet, "/api/tasks?include_inactive=true", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	assert.Len(t, tasks, 4)
}

func TestDailyTasksDefaultsWithoutCreatingRows(t *testing.T) {
	r, db := newTestRouter(t)
	token, _ := registerAndLogin(t, r, "alice")

	w, env := doJSON(t, r, http.MethodGet, "/api/tasks/daily?for_date=2024-06-12", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []struct {
		Task          models.Task `json:"task"`
		Date          string      `json:"date"`
		Completed     bool        `json:"completed"`
		PointsAwarded int         `json:"points_awarded"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	require.Len(t, entries, 3)
	for _, entry := range entries {
		assert.Equal(t, "2024-06-12", entry.Date)
		assert.False(t, entry.Completed)
		assert.Zero(t, entry.PointsAwarded)
	}

	// Viewing is read-only.
	var count int64
	require.NoError(t, db.Model(&models.DailyTaskLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDailyTasksReflectCompletions(t *testing.T) {
	r, db := newTestRouter(t)
	token, _ := registerAndLogin(t, r, "alice")
	workout := taskByCode(t, db, "workout_30m")

	w, _ := upsertLog(t, r, token, workout.ID, "2024-06-12", true)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doJSON(t, r, http.MethodGet, "/api/tasks/daily?for_date=2024-06-12", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []struct {
		Task          models.Task `json:"task"`
		Completed     bool        `json:"completed"`
		PointsAwarded int         `json:"points_awarded"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	require.Len(t, entries, 3)

	found := false
	for _, entry := range entries {
		if entry.Task.ID == workout.ID {
			found = true
			assert.True(t, entry.Completed)
			assert.Equal(t, workout.Points, entry.PointsAwarded)
		} else {
			assert.False(t, entry.Completed)
			assert.Zero(t, entry.PointsAwarded)
		}
	}
	assert.True(t, found)
}

func TestDailyTasksRejectsBadDate(t *testing.T) {
	r, _ := newTestRouter(t)
	token, _ := registerAndLogin(t, r, "alice")

	w, _ := doJSON(t, r, http.MethodGet, "/api/tasks/daily?for_date=12-06-2024", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
