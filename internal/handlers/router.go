package handlers

import (
	"time"

	"taskvista/backend/internal/config"
	"taskvista/backend/internal/middleware"
	"taskvista/backend/internal/monitoring"
	"taskvista/backend/internal/services"
	"taskvista/backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouterDeps struct {
	Config  *config.Config
	DB      *gorm.DB
	Tasks   *store.TaskStore
	Monitor *monitoring.Monitor
}

// SetupRouter assembles the full HTTP surface. Task and view routes sit
// behind the auth gate; auth, health and metrics endpoints do not.
func SetupRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	if deps.Monitor != nil {
		router.Use(deps.Monitor.Middleware())
		router.GET("/health", deps.Monitor.HealthHandler())
		router.GET("/health/live", deps.Monitor.LivenessHandler())
		router.GET("/metrics", deps.Monitor.MetricsHandler())
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	if deps.Config != nil {
		router.Use(middleware.RateLimit(deps.Config.RateLimit))
	}

	tokenTTL := time.Hour
	if deps.Config != nil {
		tokenTTL = deps.Config.Auth.AccessTokenTTL
	}

	authHandler := NewAuthHandler(deps.DB, services.NewAuthService(), tokenTTL)
	taskHandler := NewTaskHandler(deps.Tasks)
	viewHandler := NewViewHandler(deps.Tasks)
	userHandler := NewUserHandler(deps.DB, services.NewUserService())
	teamHandler := NewTeamHandler(deps.DB, services.NewTeamService())

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthGate())
	{
		protected.POST("/tasks", taskHandler.CreateTask)
		protected.GET("/tasks", taskHandler.GetTasks)
		protected.GET("/tasks/:id", taskHandler.GetTaskByID)
		protected.PUT("/tasks/:id", taskHandler.UpdateTask)
		protected.DELETE("/tasks/:id", taskHandler.DeleteTask)

		protected.GET("/views/dashboard", viewHandler.Dashboard)
		protected.GET("/views/board", viewHandler.Board)
		protected.GET("/views/priorities", viewHandler.Priorities)
		protected.GET("/views/calendar", viewHandler.Calendar)
		protected.GET("/views/timeline", viewHandler.Timeline)
		protected.GET("/search", viewHandler.Search)

		protected.GET("/users", userHandler.GetUsers)
		protected.GET("/users/:id", userHandler.GetUserByID)
		protected.PUT("/users/:id", userHandler.UpdateUser)
		protected.DELETE("/users/:id", userHandler.DeleteUser)

		protected.GET("/teams", teamHandler.GetTeams)
		protected.POST("/teams", teamHandler.CreateTeam)
		protected.GET("/teams/:id", teamHandler.GetTeamByID)
		protected.DELETE("/teams/:id", teamHandler.DeleteTeam)
		protected.POST("/teams/:id/members", teamHandler.AddMembers)
		protected.DELETE("/teams/:id/members/:user_id", teamHandler.RemoveMember)
	}

	return router
}
