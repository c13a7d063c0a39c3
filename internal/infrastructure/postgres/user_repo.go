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

const userColumns = `id, username, password, created_at, updated_at, deleted_at`

type UserRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, logger *slog.Logger) *UserRepository {
	return &UserRepository{pool: pool, logger: logger.With("component", "user_repo")}
}

func (r *UserRepository) Save(ctx context.Context, nu domain.NewUser) result.Result[repository.Error, *domain.User] {
	query := `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING ` + userColumns

	return r.one(ctx, "save user", query, nu.Username, nu.PasswordHash)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) result.Result[repository.Error, *domain.User] {
	if !validID(id) {
		return result.Failure[*domain.User](repository.ErrNotFound)
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`
	return r.one(ctx, "find user by id", query, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) result.Result[repository.Error, *domain.User] {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND deleted_at IS NULL`
	return r.one(ctx, "find user by username", query, username)
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) result.Result[repository.Error, *domain.User] {
	if !validID(u.ID) {
		return result.Failure[*domain.User](repository.ErrNotFound)
	}
	query := `
		UPDATE users
		SET    username   = $2,
		       password   = $3,
		       updated_at = NOW()
		WHERE  id = $1 AND deleted_at IS NULL
		RETURNING ` + userColumns

	return r.one(ctx, "update user", query, u.ID, u.Username, u.Password)
}

func (r *UserRepository) Delete(ctx context.Context, id string) result.Result[repository.Error, struct{}] {
	if !validID(id) {
		return result.Failure[struct{}](repository.ErrNotFound)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		e := classify(err)
		if e == repository.ErrUnknown {
			r.logger.ErrorContext(ctx, "delete user", "user_id", id, "error", err)
		}
		return result.Failure[struct{}](e)
	}
	if tag.RowsAffected() == 0 {
		return result.Failure[struct{}](repository.ErrNotFound)
	}
	return result.Success[repository.Error](struct{}{})
}

func (r *UserRepository) one(ctx context.Context, op, query string, args ...any) result.Result[repository.Error, *domain.User] {
	u, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		e := classify(err)
		if e == repository.ErrUnknown {
			r.logger.ErrorContext(ctx, op, "error", err)
		}
		return result.Failure[*domain.User](e)
	}
	return result.Success[repository.Error](u)
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt)
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
