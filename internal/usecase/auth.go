package usecase

import (
	"context"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/result"
)

// AuthUsecase composes the user service (registration) and the auth
// service (login).
type AuthUsecase struct {
	users UserService
	auth  AuthService
}

func NewAuthUsecase(users UserService, auth AuthService) *AuthUsecase {
	return &AuthUsecase{users: users, auth: auth}
}

// Register failures: AuthErrUnknown, AuthErrAlreadyExists, AuthErrPasswordTooSimple.
func (u *AuthUsecase) Register(ctx context.Context, username, password string) result.Result[AuthError, *domain.User] {
	r := u.users.Create(ctx, username, password)
	if r.IsFailure() {
		return result.Failure[*domain.User](authErrorFromUser(r.Err()))
	}
	return result.Success[AuthError](r.Value())
}

// Login failures: AuthErrUnknown, AuthErrNotFound, AuthErrPasswordNotMatching.
func (u *AuthUsecase) Login(ctx context.Context, username, password string) result.Result[AuthError, domain.Session] {
	r := u.auth.Login(ctx, username, password)
	if r.IsFailure() {
		return result.Failure[domain.Session](authErrorFromAuth(r.Err()))
	}
	return result.Success[AuthError](r.Value())
}
