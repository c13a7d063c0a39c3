// Package memory keeps users and tasks in process memory. It backs
// DATABASE_DRIVER=memory and the package tests of the layers above storage.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/repository"
	"github.com/ErlanBelekov/task-tracker/internal/result"
	"github.com/google/uuid"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	now   func() time.Time
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*domain.User),
		now:   time.Now,
	}
}

func (r *UserRepository) Save(_ context.Context, nu domain.NewUser) result.Result[repository.Error, *domain.User] {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Mirrors the unique index on live usernames in the SQL backends.
	if r.findByUsername(nu.Username) != nil {
		return result.Failure[*domain.User](repository.ErrUnknown)
	}

	now := r.now().UTC()
	u := &domain.User{
		ID:        uuid.NewString(),
		Username:  nu.Username,
		Password:  nu.PasswordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.users[u.ID] = u
	return result.Success[repository.Error](copyUser(u))
}

func (r *UserRepository) FindByID(_ context.Context, id string) result.Result[repository.Error, *domain.User] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return result.Failure[*domain.User](repository.ErrNotFound)
	}
	return result.Success[repository.Error](copyUser(u))
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) result.Result[repository.Error, *domain.User] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u := r.findByUsername(username)
	if u == nil {
		return result.Failure[*domain.User](repository.ErrNotFound)
	}
	return result.Success[repository.Error](copyUser(u))
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) result.Result[repository.Error, *domain.User] {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok || stored.DeletedAt != nil {
		return result.Failure[*domain.User](repository.ErrNotFound)
	}
	if other := r.findByUsername(user.Username); other != nil && other.ID != user.ID {
		return result.Failure[*domain.User](repository.ErrUnknown)
	}

	stored.Username = user.Username
	stored.Password = user.Password
	stored.UpdatedAt = r.now().UTC()
	return result.Success[repository.Error](copyUser(stored))
}

func (r *UserRepository) Delete(_ context.Context, id string) result.Result[repository.Error, struct{}] {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return result.Failure[struct{}](repository.ErrNotFound)
	}
	now := r.now().UTC()
	u.DeletedAt = &now
	u.UpdatedAt = now
	return result.Success[repository.Error](struct{}{})
}

// caller holds r.mu
func (r *UserRepository) findByUsername(username string) *domain.User {
	for _, u := range r.users {
		if u.Username == username && u.DeletedAt == nil {
			return u
		}
	}
	return nil
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	if u.DeletedAt != nil {
		t := *u.DeletedAt
		c.DeletedAt = &t
	}
	return &c
}
