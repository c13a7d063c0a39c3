package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/repository"
	"github.com/ErlanBelekov/task-tracker/internal/result"
	"github.com/google/uuid"
)

type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]*domain.Task
	seq   map[string]int // insertion order, breaks created_at ties
	next  int
	now   func() time.Time
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		tasks: make(map[string]*domain.Task),
		seq:   make(map[string]int),
		now:   time.Now,
	}
}

func (r *TaskRepository) Save(_ context.Context, nt domain.NewTask) result.Result[repository.Error, *domain.Task] {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	t := &domain.Task{
		ID:          uuid.NewString(),
		UserID:      nt.UserID,
		Title:       nt.Title,
		Description: nt.Description,
		IsCompleted: nt.IsCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.tasks[t.ID] = t
	r.seq[t.ID] = r.next
	r.next++
	return result.Success[repository.Error](copyTask(t))
}

func (r *TaskRepository) FindByID(_ context.Context, id string) result.Result[repository.Error, *domain.Task] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok || t.DeletedAt != nil {
		return result.Failure[*domain.Task](repository.ErrNotFound)
	}
	return result.Success[repository.Error](copyTask(t))
}

func (r *TaskRepository) FindManyByUserID(_ context.Context, userID string) result.Result[repository.Error, []*domain.Task] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*domain.Task, 0)
	for _, t := range r.tasks {
		if t.UserID == userID && t.DeletedAt == nil {
			tasks = append(tasks, copyTask(t))
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return r.seq[tasks[i].ID] < r.seq[tasks[j].ID]
	})
	return result.Success[repository.Error](tasks)
}

func (r *TaskRepository) Update(_ context.Context, task *domain.Task) result.Result[repository.Error, *domain.Task] {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tasks[task.ID]
	if !ok || stored.DeletedAt != nil {
		return result.Failure[*domain.Task](repository.ErrNotFound)
	}

	stored.Title = task.Title
	stored.Description = task.Description
	stored.IsCompleted = task.IsCompleted
	stored.UpdatedAt = r.now().UTC()
	return result.Success[repository.Error](copyTask(stored))
}

func (r *TaskRepository) Delete(_ context.Context, id string) result.Result[repository.Error, struct{}] {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.DeletedAt != nil {
		return result.Failure[struct{}](repository.ErrNotFound)
	}
	now := r.now().UTC()
	t.DeletedAt = &now
	t.UpdatedAt = now
	return result.Success[repository.Error](struct{}{})
}

func copyTask(t *domain.Task) *domain.Task {
	c := *t
	if t.DeletedAt != nil {
		d := *t.DeletedAt
		c.DeletedAt = &d
	}
	return &c
}
