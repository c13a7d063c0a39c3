package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/repository"
	"github.com/ErlanBelekov/task-tracker/internal/result"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = `id, user_id, title, description, is_completed, created_at, updated_at, deleted_at`

type TaskRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTaskRepository(pool *pgxpool.Pool, logger *slog.Logger) *TaskRepository {
	return &TaskRepository{pool: pool, logger: logger.With("component", "task_repo")}
}

func (r *TaskRepository) Save(ctx context.Context, nt domain.NewTask) result.Result[repository.Error, *domain.Task] {
	query := `
		INSERT INTO tasks (user_id, title, description, is_completed)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + taskColumns

	return r.one(ctx, "save task", query, nt.UserID, nt.Title, nt.Description, nt.IsCompleted)
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) result.Result[repository.Error, *domain.Task] {
	if !validID(id) {
		return result.Failure[*domain.Task](repository.ErrNotFound)
	}
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND deleted_at IS NULL`
	return r.one(ctx, "find task by id", query, id)
}

func (r *TaskRepository) FindManyByUserID(ctx context.Context, userID string) result.Result[repository.Error, []*domain.Task] {
	query := `
		SELECT ` + taskColumns + `
		FROM   tasks
		WHERE  user_id = $1 AND deleted_at IS NULL
		ORDER  BY created_at ASC, id ASC`

	if !validID(userID) {
		return result.Success[repository.Error]([]*domain.Task{})
	}

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return r.listFailure(ctx, userID, err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return r.listFailure(ctx, userID, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return r.listFailure(ctx, userID, err)
	}
	return result.Success[repository.Error](tasks)
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) result.Result[repository.Error, *domain.Task] {
	if !validID(t.ID) {
		return result.Failure[*domain.Task](repository.ErrNotFound)
	}
	query := `
		UPDATE tasks
		SET    title        = $2,
		       description  = $3,
		       is_completed = $4,
		       updated_at   = NOW()
		WHERE  id = $1 AND deleted_at IS NULL
		RETURNING ` + taskColumns

	return r.one(ctx, "update task", query, t.ID, t.Title, t.Description, t.IsCompleted)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) result.Result[repository.Error, struct{}] {
	if !validID(id) {
		return result.Failure[struct{}](repository.ErrNotFound)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE tasks SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		e := classify(err)
		if e == repository.ErrUnknown {
			r.logger.ErrorContext(ctx, "delete task", "task_id", id, "error", err)
		}
		return result.Failure[struct{}](e)
	}
	if tag.RowsAffected() == 0 {
		return result.Failure[struct{}](repository.ErrNotFound)
	}
	return result.Success[repository.Error](struct{}{})
}

func (r *TaskRepository) one(ctx context.Context, op, query string, args ...any) result.Result[repository.Error, *domain.Task] {
	t, err := scanTask(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		e := classify(err)
		if e == repository.ErrUnknown {
			r.logger.ErrorContext(ctx, op, "error", err)
		}
		return result.Failure[*domain.Task](e)
	}
	return result.Success[repository.Error](t)
}

// A malformed owner id cannot own anything, so it yields an empty list.
func (r *TaskRepository) listFailure(ctx context.Context, userID string, err error) result.Result[repository.Error, []*domain.Task] {
	if classify(err) == repository.ErrNotFound {
		return result.Success[repository.Error]([]*domain.Task{})
	}
	r.logger.ErrorContext(ctx, "list tasks", "user_id", userID, "error", err)
	return result.Failure[[]*domain.Task](repository.ErrUnknown)
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsCompleted,
		&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &t, nil
}
