package usecase

import (
	"context"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/result"
)

type UserUsecase struct {
	users UserService
}

func NewUserUsecase(users UserService) *UserUsecase {
	return &UserUsecase{users: users}
}

// GetUser failures: UserErrUnknown, UserErrNotFound.
func (u *UserUsecase) GetUser(ctx context.Context, id string) result.Result[UserError, *domain.User] {
	r := u.users.FindByID(ctx, id)
	if r.IsFailure() {
		return result.Failure[*domain.User](userErrorFrom(r.Err()))
	}
	return result.Success[UserError](r.Value())
}

// UpdateUser failures: UserErrUnknown, UserErrNotFound, UserErrPasswordTooSimple.
func (u *UserUsecase) UpdateUser(ctx context.Context, upd domain.UserUpdate) result.Result[UserError, *domain.User] {
	r := u.users.Update(ctx, upd)
	if r.IsFailure() {
		return result.Failure[*domain.User](userErrorFrom(r.Err()))
	}
	return result.Success[UserError](r.Value())
}

// DeleteUser failures: UserErrUnknown, UserErrNotFound.
func (u *UserUsecase) DeleteUser(ctx context.Context, id string) result.Result[UserError, *domain.User] {
	r := u.users.Delete(ctx, id)
	if r.IsFailure() {
		return result.Failure[*domain.User](userErrorFrom(r.Err()))
	}
	return result.Success[UserError](r.Value())
}
