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

// FriendController manages directed friendship edges.
type FriendController struct {
	db *gorm.DB
}

// NewFriendController creates a new controller instance.
func NewFriendController(db *gorm.DB) *FriendController {
	return &FriendController{db: db}
}

func friendshipResponse(fs models.Friendship, friend models.User) gin.H {
	return gin.H{
		"id": fs.ID,
		"friend": gin.H{
			"id":       friend.ID,
			"username": friend.Username,
		},
		"created_at": fs.CreatedAt,
	}
}

// ListFriends returns the caller's outgoing edges ordered by friend username.
func (f *FriendController) ListFriends(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var friendships []models.Friendship
	err := f.db.
		Joins("JOIN users ON users.id = friendships.friend_id").
		Where("friendships.user_id = ?", userID).
		Order("users.username ASC").
		Preload("Friend").
		Find(&friendships).Error
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to list friends")
		return
	}

	result := make([]gin.H, 0, len(friendships))
	for _, fs := range friendships {
		result = append(result, friendshipResponse(fs, fs.Friend))
	}
	utils.Success(ctx, result)
}

// AddFriend creates a directed edge from the caller to the named user.
// The reverse direction is a separate edge the other user would add.
func (f *FriendController) AddFriend(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	type request struct {
		FriendUsername string `json:"friend_username" binding:"required"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40041, "invalid request payload")
		return
	}

	var friend models.User
	err := f.db.Where("username = ?", strings.TrimSpace(req.FriendUsername)).First(&friend).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40440, "friend user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to look up user")
		return
	}
	if friend.ID == userID {
		utils.Error(ctx, http.StatusBadRequest, 40042, "you cannot add yourself as a friend")
		return
	}

	var existing models.Friendship
	if err := f.db.Where("user_id = ? AND friend_id = ?", userID, friend.ID).First(&existing).Error; err == nil {
		utils.Error(ctx, http.StatusConflict, 40940, "friendship already exists")
		return
	}

	friendship := models.Friendship{UserID: userID, FriendID: friend.ID}
	if err := f.db.Create(&friendship).Error; err != nil {
		if isDuplicateKeyErr(err) {
			utils.Error(ctx, http.StatusConflict, 40940, "friendship already exists")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to create friendship")
		return
	}

	utils.Success(ctx, friendshipResponse(friendship, friend))
}
