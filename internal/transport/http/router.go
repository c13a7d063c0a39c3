package httptransport

import (
	"log/slog"

	"github.com/ErlanBelekov/task-tracker/internal/transport/http/handler"
	"github.com/ErlanBelekov/task-tracker/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	taskHandler *handler.TaskHandler,
	tokens middleware.TokenDecoder,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(tokens)

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected account routes, always scoped to the caller
	user := api.Group("/user", authMW)
	user.GET("", userHandler.Get)
	user.PATCH("", userHandler.Update)
	user.DELETE("", userHandler.Delete)

	// Protected task routes
	tasks := api.Group("/tasks", authMW)
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/completed", taskHandler.ListCompleted)
	tasks.GET("/not-completed", taskHandler.ListNotCompleted)
	tasks.GET("/:id", taskHandler.GetByID)
	tasks.PATCH("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	return r
}
