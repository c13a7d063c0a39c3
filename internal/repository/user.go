package repository

import (
	"context"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/result"
)

// UserRepository hides soft-deleted users from every lookup.
// Save does not check for duplicates; callers look the username up first and
// the storage keeps a unique index on live usernames.
type UserRepository interface {
	Save(ctx context.Context, user domain.NewUser) result.Result[Error, *domain.User]
	FindByID(ctx context.Context, id string) result.Result[Error, *domain.User]
	FindByUsername(ctx context.Context, username string) result.Result[Error, *domain.User]
	Update(ctx context.Context, user *domain.User) result.Result[Error, *domain.User]
	Delete(ctx context.Context, id string) result.Result[Error, struct{}]
}
