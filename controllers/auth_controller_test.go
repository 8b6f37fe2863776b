package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SID01AV/productivity-tracker/models"
)

func TestRegisterLoginMe(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "alice", created.Username)
	assert.NotZero(t, created.ID)

	w, env = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.Equal(t, "bearer", login.TokenType)
	require.NotEmpty(t, login.AccessToken)

	w, env = doJSON(t, r, http.MethodGet, "/api/auth/me", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "alice", me.Username)
	assert.Equal(t, "alice@example.com", me.Email)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "bob",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Same email under a different username is rejected too.
	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "robert",
		"email":    "bob@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidatesInput(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "ab",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "carol",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newTestRouter(t)
	registerAndLogin(t, r, "dave")

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "dave",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "nobody",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	r, _ := newTestRouter(t)
	token, _ := registerAndLogin(t, r, "erin")

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInactiveUserIsRejected(t *testing.T) {
	r, db := newTestRouter(t)
	token, userID := registerAndLogin(t, r, "frank")

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", userID).Update("is_active", false).Error)

	w, _ := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
