package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SID01AV/productivity-tracker/config"
	"github.com/SID01AV/productivity-tracker/models"
	"github.com/SID01AV/productivity-tracker/utils"
)

// AuthController handles registration, login, and session endpoints.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// Register creates a local account with a bcrypt-hashed password.
func (a *AuthController) Register(ctx *gin.Context) {
	type request struct {
		Username string `json:"username" binding:"required,min=3,max=50"`
		Email    string `json:"email" binding:"omitempty,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if len(req.Username) < 3 {
		utils.Error(ctx, http.StatusBadRequest, 40002, "username must be at least 3 characters")
		return
	}

	var existing models.User
	if err := a.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		utils.Error(ctx, http.StatusConflict, 40901, "username or email already registered")
		return
	}
	if req.Email != "" {
		if err := a.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			utils.Error(ctx, http.StatusConflict, 40901, "username or email already registered")
			return
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50001, "failed to hash password")
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: hash,
		IsActive:     true,
	}
	if req.Email != "" {
		user.Email = &req.Email
	}

	if err := a.db.Create(&user).Error; err != nil {
		// Losing a registration race trips the unique index rather than the
		// pre-checks above.
		if isDuplicateKeyErr(err) {
			utils.Error(ctx, http.StatusConflict, 40901, "username or email already registered")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50002, "failed to create user")
		return
	}

	utils.Success(ctx, publicUser(user))
}

// Login verifies credentials and issues a bearer token.
func (a *AuthController) Login(ctx *gin.Context) {
	type request struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40003, "invalid request payload")
		return
	}

	var user models.User
	err := a.db.Where("username = ?", strings.TrimSpace(req.Username)).First(&user).Error
	if err != nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		// Same answer for unknown user and wrong password.
		utils.Error(ctx, http.StatusUnauthorized, 40108, "incorrect username or password")
		return
	}

	ttl := time.Duration(config.Get().TokenTTLHours) * time.Hour
	token, err := utils.GenerateToken(user.ID, user.Username, ttl)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50003, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         publicUser(user),
	})
}

// Me returns the authenticated user's public profile.
func (a *AuthController) Me(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var user models.User
	if err := a.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50004, "failed to load user")
		return
	}

	utils.Success(ctx, publicUser(user))
}

// Logout revokes the presented token until its natural expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.Error(ctx, http.StatusBadRequest, 40004, "missing bearer token")
		return
	}
	token := strings.TrimSpace(parts[1])

	claims, err := utils.ParseToken(token)
	if err != nil || claims.ExpiresAt == nil {
		utils.Error(ctx, http.StatusUnauthorized, 40105, "invalid token")
		return
	}

	utils.BlacklistToken(token, claims.ExpiresAt.Time)
	utils.Success(ctx, gin.H{"message": "logged out"})
}
