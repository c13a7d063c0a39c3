package service_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/infrastructure/memory"
	"github.com/ErlanBelekov/task-tracker/internal/password"
	"github.com/ErlanBelekov/task-tracker/internal/repository"
	"github.com/ErlanBelekov/task-tracker/internal/result"
	"golang.org/x/crypto/bcrypt"
)

// ---- repositories: in-memory store with per-method overrides ----

type fakeUserRepo struct {
	*memory.UserRepository
	save           func(ctx context.Context, u domain.NewUser) result.Result[repository.Error, *domain.User]
	findByID       func(ctx context.Context, id string) result.Result[repository.Error, *domain.User]
	findByUsername func(ctx context.Context, username string) result.Result[repository.Error, *domain.User]
	update         func(ctx context.Context, u *domain.User) result.Result[repository.Error, *domain.User]
	delete         func(ctx context.Context, id string) result.Result[repository.Error, struct{}]
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{UserRepository: memory.NewUserRepository()}
}

func (r *fakeUserRepo) Save(ctx context.Context, u domain.NewUser) result.Result[repository.Error, *domain.User] {
	if r.save != nil {
		return r.save(ctx, u)
	}
	return r.UserRepository.Save(ctx, u)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) result.Result[repository.Error, *domain.User] {
	if r.findByID != nil {
		return r.findByID(ctx, id)
	}
	return r.UserRepository.FindByID(ctx, id)
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) result.Result[repository.Error, *domain.User] {
	if r.findByUsername != nil {
		return r.findByUsername(ctx, username)
	}
	return r.UserRepository.FindByUsername(ctx, username)
}

func (r *fakeUserRepo) Update(ctx context.Context, u *domain.User) result.Result[repository.Error, *domain.User] {
	if r.update != nil {
		return r.update(ctx, u)
	}
	return r.UserRepository.Update(ctx, u)
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) result.Result[repository.Error, struct{}] {
	if r.delete != nil {
		return r.delete(ctx, id)
	}
	return r.UserRepository.Delete(ctx, id)
}

type fakeTaskRepo struct {
	*memory.TaskRepository
	save     func(ctx context.Context, t domain.NewTask) result.Result[repository.Error, *domain.Task]
	findByID func(ctx context.Context, id string) result.Result[repository.Error, *domain.Task]
	findMany func(ctx context.Context, userID string) result.Result[repository.Error, []*domain.Task]
	update   func(ctx context.Context, t *domain.Task) result.Result[repository.Error, *domain.Task]
	delete   func(ctx context.Context, id string) result.Result[repository.Error, struct{}]
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{TaskRepository: memory.NewTaskRepository()}
}

func (r *fakeTaskRepo) Save(ctx context.Context, t domain.NewTask) result.Result[repository.Error, *domain.Task] {
	if r.save != nil {
		return r.save(ctx, t)
	}
	return r.TaskRepository.Save(ctx, t)
}

func (r *fakeTaskRepo) FindByID(ctx context.Context, id string) result.Result[repository.Error, *domain.Task] {
	if r.findByID != nil {
		return r.findByID(ctx, id)
	}
	return r.TaskRepository.FindByID(ctx, id)
}

func (r *fakeTaskRepo) FindManyByUserID(ctx context.Context, userID string) result.Result[repository.Error, []*domain.Task] {
	if r.findMany != nil {
		return r.findMany(ctx, userID)
	}
	return r.TaskRepository.FindManyByUserID(ctx, userID)
}

func (r *fakeTaskRepo) Update(ctx context.Context, t *domain.Task) result.Result[repository.Error, *domain.Task] {
	if r.update != nil {
		return r.update(ctx, t)
	}
	return r.TaskRepository.Update(ctx, t)
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id string) result.Result[repository.Error, struct{}] {
	if r.delete != nil {
		return r.delete(ctx, id)
	}
	return r.TaskRepository.Delete(ctx, id)
}

// ---- collaborators ----

// fakePolicy delegates to a real bcrypt policy unless a func is set.
type fakePolicy struct {
	real    *password.Policy
	hash    func(plain string) result.Result[password.Error, string]
	compare func(hash, plain string) result.Result[password.Error, struct{}]
}

func newFakePolicy() *fakePolicy {
	return &fakePolicy{real: password.NewPolicy(bcrypt.MinCost)}
}

func (p *fakePolicy) TooSimple(plain string) bool { return p.real.TooSimple(plain) }

func (p *fakePolicy) Hash(plain string) result.Result[password.Error, string] {
	if p.hash != nil {
		return p.hash(plain)
	}
	return p.real.Hash(plain)
}

func (p *fakePolicy) Compare(hash, plain string) result.Result[password.Error, struct{}] {
	if p.compare != nil {
		return p.compare(hash, plain)
	}
	return p.real.Compare(hash, plain)
}

type fakeTokenIssuer struct {
	createToken func(subjectID string) (string, error)
}

func (f *fakeTokenIssuer) CreateToken(subjectID string) (string, error) {
	if f.createToken != nil {
		return f.createToken(subjectID)
	}
	return "token-for-" + subjectID, nil
}

// ---- helpers ----

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

func userUnknown(context.Context, string) result.Result[repository.Error, *domain.User] {
	return result.Failure[*domain.User](repository.ErrUnknown)
}

func taskUnknown(context.Context, string) result.Result[repository.Error, *domain.Task] {
	return result.Failure[*domain.Task](repository.ErrUnknown)
}
