package repository

import (
	"context"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/result"
)

// TaskRepository does not check ownership on single-task calls; that is the
// service's job. FindManyByUserID is scoped to the owner at the query level.
type TaskRepository interface {
	Save(ctx context.Context, task domain.NewTask) result.Result[Error, *domain.Task]
	FindByID(ctx context.Context, id string) result.Result[Error, *domain.Task]
	// FindManyByUserID returns the owner's live tasks ordered by created_at ASC.
	FindManyByUserID(ctx context.Context, userID string) result.Result[Error, []*domain.Task]
	Update(ctx context.Context, task *domain.Task) result.Result[Error, *domain.Task]
	Delete(ctx context.Context, id string) result.Result[Error, struct{}]
}
