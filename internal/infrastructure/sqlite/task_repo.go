package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/repository"
	"github.com/ErlanBelekov/task-tracker/internal/result"
	"github.com/google/uuid"
)

const taskColumns = `id, user_id, title, description, is_completed, created_at, updated_at, deleted_at`

type TaskRepository struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

func NewTaskRepository(db *DB, logger *slog.Logger) *TaskRepository {
	return &TaskRepository{
		db:     db.sql,
		logger: logger.With("component", "task_repo"),
		now:    time.Now,
	}
}

func (r *TaskRepository) Save(ctx context.Context, nt domain.NewTask) result.Result[repository.Error, *domain.Task] {
	now := toNanos(r.now())
	query := `
		INSERT INTO tasks (id, user_id, title, description, is_completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + taskColumns

	return r.one(ctx, "save task", query,
		uuid.NewString(), nt.UserID, nt.Title, nt.Description, nt.IsCompleted, now, now,
	)
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) result.Result[repository.Error, *domain.Task] {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND deleted_at IS NULL`
	return r.one(ctx, "find task by id", query, id)
}

func (r *TaskRepository) FindManyByUserID(ctx context.Context, userID string) result.Result[repository.Error, []*domain.Task] {
	query := `
		SELECT ` + taskColumns + `
		FROM   tasks
		WHERE  user_id = ? AND deleted_at IS NULL
		ORDER  BY created_at ASC, rowid ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
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
	query := `
		UPDATE tasks
		SET    title = ?, description = ?, is_completed = ?, updated_at = ?
		WHERE  id = ? AND deleted_at IS NULL
		RETURNING ` + taskColumns

	return r.one(ctx, "update task", query, t.Title, t.Description, t.IsCompleted, toNanos(r.now()), t.ID)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) result.Result[repository.Error, struct{}] {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		toNanos(r.now()), id,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "delete task", "task_id", id, "error", err)
		return result.Failure[struct{}](repository.ErrUnknown)
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.logger.ErrorContext(ctx, "delete task", "task_id", id, "error", err)
		return result.Failure[struct{}](repository.ErrUnknown)
	}
	if n == 0 {
		return result.Failure[struct{}](repository.ErrNotFound)
	}
	return result.Success[repository.Error](struct{}{})
}

func (r *TaskRepository) one(ctx context.Context, op, query string, args ...any) result.Result[repository.Error, *domain.Task] {
	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		e := classify(err)
		switch {
		case e == repository.ErrNotFound:
		case isConstraint(err):
			r.logger.WarnContext(ctx, op, "error", err)
		default:
			r.logger.ErrorContext(ctx, op, "error", err)
		}
		return result.Failure[*domain.Task](e)
	}
	return result.Success[repository.Error](t)
}

func (r *TaskRepository) listFailure(ctx context.Context, userID string, err error) result.Result[repository.Error, []*domain.Task] {
	r.logger.ErrorContext(ctx, "list tasks", "user_id", userID, "error", err)
	return result.Failure[[]*domain.Task](repository.ErrUnknown)
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		t                    domain.Task
		createdAt, updatedAt int64
		deletedAt            sql.NullInt64
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsCompleted,
		&createdAt, &updatedAt, &deletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan task: %w", err)
	}
	t.CreatedAt = fromNanos(createdAt)
	t.UpdatedAt = fromNanos(updatedAt)
	t.DeletedAt = fromNullNanos(deletedAt)
	return &t, nil
}
