package service

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/repository"
	"github.com/ErlanBelekov/task-tracker/internal/result"
)

// TaskService applies the ownership gate to every single-task operation.
// List operations rely on the repository's owner-scoped query instead.
type TaskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// Create failures: TaskErrUnknown.
func (s *TaskService) Create(ctx context.Context, task domain.NewTask) result.Result[TaskError, *domain.Task] {
	saved := s.tasks.Save(ctx, task)
	if saved.IsFailure() {
		return result.Failure[*domain.Task](TaskErrUnknown)
	}
	return result.Success[TaskError](saved.Value())
}

// GetByID failures: TaskErrUnknown, TaskErrNotFound, TaskErrNotBelongingToUser.
func (s *TaskService) GetByID(ctx context.Context, taskID, userID string) result.Result[TaskError, *domain.Task] {
	found := s.tasks.FindByID(ctx, taskID)
	if found.IsFailure() {
		return result.Failure[*domain.Task](taskErrorFrom(found.Err()))
	}

	task := found.Value()
	if !task.BelongsTo(userID) {
		return result.Failure[*domain.Task](TaskErrNotBelongingToUser)
	}
	return result.Success[TaskError](task)
}

// Update merges the fields set in upd into the caller's task.
// Failures: TaskErrUnknown, TaskErrNotFound, TaskErrNotBelongingToUser.
func (s *TaskService) Update(ctx context.Context, taskID, userID string, upd domain.TaskUpdate) result.Result[TaskError, *domain.Task] {
	found := s.GetByID(ctx, taskID, userID)
	if found.IsFailure() {
		return found
	}

	task := *found.Value()
	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.IsCompleted != nil {
		task.IsCompleted = *upd.IsCompleted
	}

	updated := s.tasks.Update(ctx, &task)
	if updated.IsFailure() {
		return result.Failure[*domain.Task](taskErrorFrom(updated.Err()))
	}
	return result.Success[TaskError](updated.Value())
}

// Delete removes the caller's task and returns its last stored state.
// Failures: TaskErrUnknown, TaskErrNotFound, TaskErrNotBelongingToUser.
func (s *TaskService) Delete(ctx context.Context, taskID, userID string) result.Result[TaskError, *domain.Task] {
	found := s.GetByID(ctx, taskID, userID)
	if found.IsFailure() {
		return found
	}

	if deleted := s.tasks.Delete(ctx, taskID); deleted.IsFailure() {
		return result.Failure[*domain.Task](taskErrorFrom(deleted.Err()))
	}
	return found
}

// GetAll failures: TaskErrUnknown.
func (s *TaskService) GetAll(ctx context.Context, userID string) result.Result[TaskError, []*domain.Task] {
	found := s.tasks.FindManyByUserID(ctx, userID)
	if found.IsFailure() {
		return result.Failure[[]*domain.Task](TaskErrUnknown)
	}
	return result.Success[TaskError](found.Value())
}

// GetCompleted failures: TaskErrUnknown.
func (s *TaskService) GetCompleted(ctx context.Context, userID string) result.Result[TaskError, []*domain.Task] {
	return result.Map(s.GetAll(ctx, userID), completed(true))
}

// GetNotCompleted failures: TaskErrUnknown.
func (s *TaskService) GetNotCompleted(ctx context.Context, userID string) result.Result[TaskError, []*domain.Task] {
	return result.Map(s.GetAll(ctx, userID), completed(false))
}

func completed(want bool) func([]*domain.Task) []*domain.Task {
	return func(tasks []*domain.Task) []*domain.Task {
		out := make([]*domain.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.IsCompleted == want {
				out = append(out, t)
			}
		}
		return out
	}
}

func taskErrorFrom(e repository.Error) TaskError {
	switch e {
	case repository.ErrUnknown:
		return TaskErrUnknown
	case repository.ErrNotFound:
		return TaskErrNotFound
	}
	panic(fmt.Sprintf("unreachable repository error %d", e))
}
