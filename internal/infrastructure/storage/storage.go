// Package storage opens the repository backend selected by DATABASE_DRIVER.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ErlanBelekov/task-tracker/config"
	"github.com/ErlanBelekov/task-tracker/internal/health"
	"github.com/ErlanBelekov/task-tracker/internal/infrastructure/memory"
	"github.com/ErlanBelekov/task-tracker/internal/infrastructure/postgres"
	"github.com/ErlanBelekov/task-tracker/internal/infrastructure/sqlite"
	"github.com/ErlanBelekov/task-tracker/internal/repository"
)

// Storage bundles the repositories of one backend with its health probe.
type Storage struct {
	Name  string
	Users repository.UserRepository
	Tasks repository.TaskRepository
	DB    health.Pinger
	close func()
}

func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Storage{
			Name:  config.DriverPostgres,
			Users: postgres.NewUserRepository(pool, logger),
			Tasks: postgres.NewTaskRepository(pool, logger),
			DB:    pool,
			close: pool.Close,
		}, nil

	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Name:  config.DriverSQLite,
			Users: sqlite.NewUserRepository(db, logger),
			Tasks: sqlite.NewTaskRepository(db, logger),
			DB:    db,
			close: func() { _ = db.Close() },
		}, nil

	case config.DriverMemory:
		return &Storage{
			Name:  config.DriverMemory,
			Users: memory.NewUserRepository(),
			Tasks: memory.NewTaskRepository(),
			DB:    health.PingFunc(func(context.Context) error { return nil }),
		}, nil
	}
	return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
}
