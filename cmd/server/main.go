package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ErlanBelekov/task-tracker/config"
	"github.com/ErlanBelekov/task-tracker/internal/health"
	"github.com/ErlanBelekov/task-tracker/internal/infrastructure/storage"
	ctxlog "github.com/ErlanBelekov/task-tracker/internal/log"
	"github.com/ErlanBelekov/task-tracker/internal/metrics"
	"github.com/ErlanBelekov/task-tracker/internal/password"
	"github.com/ErlanBelekov/task-tracker/internal/service"
	"github.com/ErlanBelekov/task-tracker/internal/token"
	httptransport "github.com/ErlanBelekov/task-tracker/internal/transport/http"
	"github.com/ErlanBelekov/task-tracker/internal/transport/http/handler"
	"github.com/ErlanBelekov/task-tracker/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer store.Close()

	passwords := password.NewPolicy(cfg.BcryptCost)
	tokens := token.NewJWTIssuer([]byte(cfg.JWTSecret), cfg.JWTTTL)

	// Users and auth
	userService := service.NewUserService(store.Users, passwords)
	authService := service.NewAuthService(store.Users, passwords, tokens, logger)
	authHandler := handler.NewAuthHandler(usecase.NewAuthUsecase(userService, authService), logger)
	userHandler := handler.NewUserHandler(usecase.NewUserUsecase(userService), logger)

	// Tasks
	taskService := service.NewTaskService(store.Tasks)
	taskHandler := handler.NewTaskHandler(usecase.NewTaskUsecase(taskService), logger)

	metrics.Register(prometheus.DefaultRegisterer)
	checker := health.NewChecker(store.Name, store.DB, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httptransport.NewRouter(logger, authHandler, userHandler, taskHandler, tokens),
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port, "storage", store.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
