package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SID01AV/productivity-tracker/middleware"
	"github.com/SID01AV/productivity-tracker/models"
)

// getUserID extracts the authenticated user ID stored by the auth middleware.
func getUserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(middleware.ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// publicUser strips credential fields from a user for API responses.
func publicUser(u models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}
}

// isDuplicateKeyErr reports whether err is a uniqueness-constraint violation.
// TranslateError covers MySQL; the string checks keep the sqlite test driver
// and untranslated sessions covered.
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
