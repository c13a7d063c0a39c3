package usecase

import (
	"context"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/result"
	"github.com/ErlanBelekov/task-tracker/internal/service"
)

// UserService is satisfied by *service.UserService.
type UserService interface {
	Create(ctx context.Context, username, plain string) result.Result[service.UserError, *domain.User]
	FindByID(ctx context.Context, id string) result.Result[service.UserError, *domain.User]
	Update(ctx context.Context, upd domain.UserUpdate) result.Result[service.UserError, *domain.User]
	Delete(ctx context.Context, id string) result.Result[service.UserError, *domain.User]
}

// AuthService is satisfied by *service.AuthService.
type AuthService interface {
	Login(ctx context.Context, username, plain string) result.Result[service.AuthError, domain.Session]
}

// TaskService is satisfied by *service.TaskService.
type TaskService interface {
	Create(ctx context.Context, task domain.NewTask) result.Result[service.TaskError, *domain.Task]
	GetByID(ctx context.Context, taskID, userID string) result.Result[service.TaskError, *domain.Task]
	Update(ctx context.Context, taskID, userID string, upd domain.TaskUpdate) result.Result[service.TaskError, *domain.Task]
	Delete(ctx context.Context, taskID, userID string) result.Result[service.TaskError, *domain.Task]
	GetAll(ctx context.Context, userID string) result.Result[service.TaskError, []*domain.Task]
	GetCompleted(ctx context.Context, userID string) result.Result[service.TaskError, []*domain.Task]
	GetNotCompleted(ctx context.Context, userID string) result.Result[service.TaskError, []*domain.Task]
}
