package usecase_test

import (
	"context"
	"testing"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/result"
	"github.com/ErlanBelekov/task-tracker/internal/service"
)

type fakeUserService struct {
	create   func(ctx context.Context, username, plain string) result.Result[service.UserError, *domain.User]
	findByID func(ctx context.Context, id string) result.Result[service.UserError, *domain.User]
	update   func(ctx context.Context, upd domain.UserUpdate) result.Result[service.UserError, *domain.User]
	delete   func(ctx context.Context, id string) result.Result[service.UserError, *domain.User]
}

func (f *fakeUserService) Create(ctx context.Context, username, plain string) result.Result[service.UserError, *domain.User] {
	return f.create(ctx, username, plain)
}

func (f *fakeUserService) FindByID(ctx context.Context, id string) result.Result[service.UserError, *domain.User] {
	return f.findByID(ctx, id)
}

func (f *fakeUserService) Update(ctx context.Context, upd domain.UserUpdate) result.Result[service.UserError, *domain.User] {
	return f.update(ctx, upd)
}

func (f *fakeUserService) Delete(ctx context.Context, id string) result.Result[service.UserError, *domain.User] {
	return f.delete(ctx, id)
}

// failingUserService fails every call with err.
func failingUserService(err service.UserError) *fakeUserService {
	fail := func() result.Result[service.UserError, *domain.User] { return result.Failure[*domain.User](err) }
	return &fakeUserService{
		create:   func(context.Context, string, string) result.Result[service.UserError, *domain.User] { return fail() },
		findByID: func(context.Context, string) result.Result[service.UserError, *domain.User] { return fail() },
		update:   func(context.Context, domain.UserUpdate) result.Result[service.UserError, *domain.User] { return fail() },
		delete:   func(context.Context, string) result.Result[service.UserError, *domain.User] { return fail() },
	}
}

type fakeAuthService struct {
	login func(ctx context.Context, username, plain string) result.Result[service.AuthError, domain.Session]
}

func (f *fakeAuthService) Login(ctx context.Context, username, plain string) result.Result[service.AuthError, domain.Session] {
	return f.login(ctx, username, plain)
}

// failingTaskService fails every call with err.
type failingTaskService struct {
	err service.TaskError
}

func (f failingTaskService) Create(context.Context, domain.NewTask) result.Result[service.TaskError, *domain.Task] {
	return result.Failure[*domain.Task](f.err)
}

func (f failingTaskService) GetByID(context.Context, string, string) result.Result[service.TaskError, *domain.Task] {
	return result.Failure[*domain.Task](f.err)
}

func (f failingTaskService) Update(context.Context, string, string, domain.TaskUpdate) result.Result[service.TaskError, *domain.Task] {
	return result.Failure[*domain.Task](f.err)
}

func (f failingTaskService) Delete(context.Context, string, string) result.Result[service.TaskError, *domain.Task] {
	return result.Failure[*domain.Task](f.err)
}

func (f failingTaskService) GetAll(context.Context, string) result.Result[service.TaskError, []*domain.Task] {
	return result.Failure[[]*domain.Task](f.err)
}

func (f failingTaskService) GetCompleted(context.Context, string) result.Result[service.TaskError, []*domain.Task] {
	return result.Failure[[]*domain.Task](f.err)
}

func (f failingTaskService) GetNotCompleted(context.Context, string) result.Result[service.TaskError, []*domain.Task] {
	return result.Failure[[]*domain.Task](f.err)
}

func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	fn()
}
