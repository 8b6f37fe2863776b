package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SID01AV/productivity-tracker/config"
	"github.com/SID01AV/productivity-tracker/models"
	"github.com/SID01AV/productivity-tracker/routes"
)

// envelope mirrors utils.JSONResponse with a raw payload for per-test decoding.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	config.SetForTesting(config.AppConfig{
		AppPort:            "8080",
		GinMode:            "test",
		JWTSecret:          "unit-test-secret",
		TokenTTLHours:      72,
		RateLimitPerMinute: 10000,
		AllowedOrigins:     []string{"*"},
		LogLevel:           "silent",
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled :memory: connection per goroutine would each see its own
	// database; pin the pool to one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}, &models.DailyTaskLog{}, &models.Friendship{}))
	require.NoError(t, config.SeedDefaultTasks(db))

	return routes.SetupRouter(db), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

// registerAndLogin creates an account through the API and returns its token
// and user ID.
func registerAndLogin(t *testing.T, r *gin.Engine, username string) (string, uint) {
	t.Helper()

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.NotEmpty(t, payload.AccessToken)
	return payload.AccessToken, payload.User.ID
}

// createUser inserts a user directly, for fixtures that never log in.
func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		PasswordHash: "not-a-real-hash",
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func taskByCode(t *testing.T, db *gorm.DB, code string) models.Task {
	t.Helper()
	var task models.Task
	require.NoError(t, db.Where("code = ?", code).First(&task).Error)
	return task
}

func upsertLog(t *testing.T, r *gin.Engine, token string, taskID uint, date string, completed bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	return doJSON(t, r, http.MethodPost, "/api/daily-logs", token, gin.H{
		"task_id":   taskID,
		"date":      date,
		"completed": completed,
	})
}
