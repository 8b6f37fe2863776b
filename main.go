package main

import (
	"github.com/SID01AV/productivity-tracker/config"
	"github.com/SID01AV/productivity-tracker/models"
	"github.com/SID01AV/productivity-tracker/routes"
	"github.com/SID01AV/productivity-tracker/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.Task{}, &models.DailyTaskLog{}, &models.Friendship{})

	// Seed the default task catalog on first deployment; a no-op afterwards.
	if err := config.SeedDefaultTasks(db); err != nil {
		utils.Sugar.Fatalf("failed to seed default tasks: %v", err)
	}

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
