package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SID01AV/productivity-tracker/config"
	"github.com/SID01AV/productivity-tracker/controllers"
	"github.com/SID01AV/productivity-tracker/middleware"
	"github.com/SID01AV/productivity-tracker/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(utils.GinLogger())
	r.Use(utils.GinRecovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db)
	taskController := controllers.NewTaskController(db)
	logController := controllers.NewLogController(db)
	friendController := controllers.NewFriendController(db)
	leaderboardController := controllers.NewLeaderboardController(db)
	statsController := controllers.NewStatsController(db)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(db), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(db), authController.Me)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(db))
	protected.GET("/tasks", taskController.ListTasks)
	protected.GET("/tasks/daily", taskController.DailyTasks)
	protected.POST("/daily-logs", logController.UpsertDailyLog)
	protected.GET("/friends", friendController.ListFriends)
	protected.POST("/friends", friendController.AddFriend)
	protected.GET("/leaderboard", leaderboardController.GetLeaderboard)
	protected.GET("/stats/summary", statsController.GetSummary)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}
