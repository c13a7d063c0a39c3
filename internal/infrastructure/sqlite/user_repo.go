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

const userColumns = `id, username, password, created_at, updated_at, deleted_at`

type UserRepository struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

func NewUserRepository(db *DB, logger *slog.Logger) *UserRepository {
	return &UserRepository{
		db:     db.sql,
		logger: logger.With("component", "user_repo"),
		now:    time.Now,
	}
}

func (r *UserRepository) Save(ctx context.Context, nu domain.NewUser) result.Result[repository.Error, *domain.User] {
	now := toNanos(r.now())
	query := `
		INSERT INTO users (id, username, password, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING ` + userColumns

	return r.one(ctx, "save user", query, uuid.NewString(), nu.Username, nu.PasswordHash, now, now)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) result.Result[repository.Error, *domain.User] {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ? AND deleted_at IS NULL`
	return r.one(ctx, "find user by id", query, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) result.Result[repository.Error, *domain.User] {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ? AND deleted_at IS NULL`
	return r.one(ctx, "find user by username", query, username)
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) result.Result[repository.Error, *domain.User] {
	query := `
		UPDATE users
		SET    username = ?, password = ?, updated_at = ?
		WHERE  id = ? AND deleted_at IS NULL
		RETURNING ` + userColumns

	return r.one(ctx, "update user", query, u.Username, u.Password, toNanos(r.now()), u.ID)
}

func (r *UserRepository) Delete(ctx context.Context, id string) result.Result[repository.Error, struct{}] {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		toNanos(r.now()), id,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "delete user", "user_id", id, "error", err)
		return result.Failure[struct{}](repository.ErrUnknown)
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.logger.ErrorContext(ctx, "delete user", "user_id", id, "error", err)
		return result.Failure[struct{}](repository.ErrUnknown)
	}
	if n == 0 {
		return result.Failure[struct{}](repository.ErrNotFound)
	}
	return result.Success[repository.Error](struct{}{})
}

func (r *UserRepository) one(ctx context.Context, op, query string, args ...any) result.Result[repository.Error, *domain.User] {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		e := classify(err)
		switch {
		case e == repository.ErrNotFound:
		case isConstraint(err):
			r.logger.WarnContext(ctx, op, "error", err)
		default:
			r.logger.ErrorContext(ctx, op, "error", err)
		}
		return result.Failure[*domain.User](e)
	}
	return result.Success[repository.Error](u)
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u                    domain.User
		createdAt, updatedAt int64
		deletedAt            sql.NullInt64
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.CreatedAt = fromNanos(createdAt)
	u.UpdatedAt = fromNanos(updatedAt)
	u.DeletedAt = fromNullNanos(deletedAt)
	return &u, nil
}
