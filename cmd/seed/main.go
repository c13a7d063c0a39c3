// seed registers a demo account and a handful of tasks through the use cases,
// against the persistent storage DATABASE_DRIVER selects (postgres or sqlite).
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ErlanBelekov/task-tracker/config"
	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/infrastructure/storage"
	"github.com/ErlanBelekov/task-tracker/internal/password"
	"github.com/ErlanBelekov/task-tracker/internal/service"
	"github.com/ErlanBelekov/task-tracker/internal/token"
	"github.com/ErlanBelekov/task-tracker/internal/usecase"
	"github.com/lmittmann/tint"
)

const (
	seedUsername = "demo"
	seedPassword = "demo-password"
)

type taskSpec struct {
	title       string
	description string
	done        bool
}

var tasks = []taskSpec{
	{"Set up local environment", "Install Go and start postgres", true},
	{"Read the API routes", "", true},
	{"Register a second account", "Check that its task list is empty", false},
	{"Complete a task", "PATCH /api/v1/tasks/:id with is_completed=true", false},
	{"Delete a task", "", false},
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := checkDriver(cfg.DatabaseDriver); err != nil {
		log.Fatal(err)
	}
	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: cfg.SlogLevel(), TimeFormat: time.Kitchen}))

	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer store.Close()

	passwords := password.NewPolicy(cfg.BcryptCost)
	tokens := token.NewJWTIssuer([]byte(cfg.JWTSecret), cfg.JWTTTL)
	userService := service.NewUserService(store.Users, passwords)
	auth := usecase.NewAuthUsecase(userService, service.NewAuthService(store.Users, passwords, tokens, logger))
	taskUsecase := usecase.NewTaskUsecase(service.NewTaskService(store.Tasks))

	reg := auth.Register(ctx, seedUsername, seedPassword)
	if reg.IsFailure() && reg.Err() != usecase.AuthErrAlreadyExists {
		log.Fatalf("register %s: %v", seedUsername, reg.Err())
	}

	session := auth.Login(ctx, seedUsername, seedPassword)
	if session.IsFailure() {
		log.Fatalf("login %s: %v", seedUsername, session.Err())
	}
	userID := session.Value().UserID

	for _, spec := range tasks {
		r := taskUsecase.Create(ctx, domain.NewTask{
			UserID:      userID,
			Title:       spec.title,
			Description: spec.description,
			IsCompleted: spec.done,
		})
		if r.IsFailure() {
			log.Fatalf("create task %q: %v", spec.title, r.Err())
		}
	}

	logger.Info("seeded", "username", seedUsername, "user_id", userID, "tasks", len(tasks))
	logger.Info("token", "bearer", session.Value().Token)
}

// checkDriver rejects backends that do not outlive the seed process.
func checkDriver(driver string) error {
	if driver == config.DriverMemory {
		return fmt.Errorf("seed: DATABASE_DRIVER=%s keeps nothing after exit; use %s or %s",
			driver, config.DriverPostgres, config.DriverSQLite)
	}
	return nil
}
