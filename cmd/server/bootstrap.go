package main

import (
	"github.com/kanbanhq/backend/internal/config"
	"github.com/kanbanhq/backend/internal/handlers"
	"github.com/kanbanhq/backend/internal/models"
	"github.com/kanbanhq/backend/internal/services"
	"github.com/kanbanhq/backend/internal/utils"
	"github.com/kanbanhq/backend/pkg/logger"
)

// appServices holds all initialized handlers needed by the application.
type appServices struct {
	authHandler      *handlers.AuthHandler
	userHandler      *handlers.UserHandler
	boardHandler     *handlers.BoardHandler
	taskHandler      *handlers.TaskHandler
	commentHandler   *handlers.CommentHandler
	dashboardHandler *handlers.DashboardHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Seed default data
	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	// Initialize system logger
	services.InitSystemLogger(models.GetDB())

	// Start system log cleanup scheduler
	services.StartLogCleanupScheduler(models.GetDB())

	db := models.GetDB()
	return &appServices{
		authHandler:      handlers.NewAuthHandler(db, cfg),
		userHandler:      handlers.NewUserHandler(db),
		boardHandler:     handlers.NewBoardHandler(db),
		taskHandler:      handlers.NewTaskHandler(db),
		commentHandler:   handlers.NewCommentHandler(db),
		dashboardHandler: handlers.NewDashboardHandler(db),
	}
}

// shutdown gracefully stops all background services.
func (s *appServices) shutdown() {
	services.StopLogCleanupScheduler()
	logger.Info().Msg("All schedulers stopped")
}
