package main

import (
	"github.com/gin-gonic/gin"
	"github.com/kanbanhq/backend/internal/handlers"
	"github.com/kanbanhq/backend/internal/middleware"
	"github.com/kanbanhq/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(middleware.RequestID(), logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for the public auth endpoints
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", handlers.Health)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/registration", svc.authHandler.Register)
			auth.POST("/login", svc.authHandler.Login)
			auth.GET("/email-check", svc.userHandler.CheckEmailAvailability)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AuditLog())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)

			// Dashboard
			protected.GET("/dashboard/stats", svc.dashboardHandler.GetStats)

			// Member lookup for board invitations
			protected.GET("/email-check", svc.userHandler.LookupByEmail)

			// Boards
			protected.GET("/boards", svc.boardHandler.List)
			protected.POST("/boards", svc.boardHandler.Create)
			protected.GET("/boards/:id", svc.boardHandler.GetByID)
			protected.PATCH("/boards/:id", svc.boardHandler.Update)
			protected.DELETE("/boards/:id", svc.boardHandler.Delete)

			// Tasks
			protected.POST("/tasks", svc.taskHandler.Create)
			protected.GET("/tasks/assigned-to-me", svc.taskHandler.ListAssignedToMe)
			protected.GET("/tasks/reviewing", svc.taskHandler.ListReviewing)
			protected.GET("/tasks/:id", svc.taskHandler.GetByID)
			protected.PATCH("/tasks/:id", svc.taskHandler.Update)
			protected.DELETE("/tasks/:id", svc.taskHandler.Delete)

			// Comments
			protected.GET("/tasks/:id/comments", svc.commentHandler.List)
			protected.POST("/tasks/:id/comments", svc.commentHandler.Create)
			protected.GET("/tasks/:id/comments/:comment_id", svc.commentHandler.Get)
			protected.PATCH("/tasks/:id/comments/:comment_id", svc.commentHandler.Update)
			protected.DELETE("/tasks/:id/comments/:comment_id", svc.commentHandler.Delete)
		}
	}
}
