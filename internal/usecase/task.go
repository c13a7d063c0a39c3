package usecase

import (
	"context"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/result"
	"github.com/ErlanBelekov/task-tracker/internal/service"
)

type TaskUsecase struct {
	tasks TaskService
}

func NewTaskUsecase(tasks TaskService) *TaskUsecase {
	return &TaskUsecase{tasks: tasks}
}

// Create failures: TaskErrUnknown.
func (u *TaskUsecase) Create(ctx context.Context, task domain.NewTask) result.Result[TaskError, *domain.Task] {
	return retagTask(u.tasks.Create(ctx, task))
}

// GetTask failures: TaskErrUnknown, TaskErrNotFound, TaskErrNotBelongingToUser.
func (u *TaskUsecase) GetTask(ctx context.Context, taskID, userID string) result.Result[TaskError, *domain.Task] {
	return retagTask(u.tasks.GetByID(ctx, taskID, userID))
}

// UpdateTask failures: TaskErrUnknown, TaskErrNotFound, TaskErrNotBelongingToUser.
func (u *TaskUsecase) UpdateTask(ctx context.Context, taskID, userID string, upd domain.TaskUpdate) result.Result[TaskError, *domain.Task] {
	return retagTask(u.tasks.Update(ctx, taskID, userID, upd))
}

// DeleteTask failures: TaskErrUnknown, TaskErrNotFound, TaskErrNotBelongingToUser.
func (u *TaskUsecase) DeleteTask(ctx context.Context, taskID, userID string) result.Result[TaskError, *domain.Task] {
	return retagTask(u.tasks.Delete(ctx, taskID, userID))
}

// GetAll failures: TaskErrUnknown.
func (u *TaskUsecase) GetAll(ctx context.Context, userID string) result.Result[TaskError, []*domain.Task] {
	return retagTask(u.tasks.GetAll(ctx, userID))
}

// GetCompleted failures: TaskErrUnknown.
func (u *TaskUsecase) GetCompleted(ctx context.Context, userID string) result.Result[TaskError, []*domain.Task] {
	return retagTask(u.tasks.GetCompleted(ctx, userID))
}

// GetNotCompleted failures: TaskErrUnknown.
func (u *TaskUsecase) GetNotCompleted(ctx context.Context, userID string) result.Result[TaskError, []*domain.Task] {
	return retagTask(u.tasks.GetNotCompleted(ctx, userID))
}

func retagTask[T any](r result.Result[service.TaskError, T]) result.Result[TaskError, T] {
	if r.IsFailure() {
		return result.Failure[T](taskErrorFrom(r.Err()))
	}
	return result.Success[TaskError](r.Value())
}
