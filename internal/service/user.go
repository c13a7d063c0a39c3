package service

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/repository"
	"github.com/ErlanBelekov/task-tracker/internal/result"
)

type UserService struct {
	users    repository.UserRepository
	password PasswordPolicy
}

func NewUserService(users repository.UserRepository, password PasswordPolicy) *UserService {
	return &UserService{users: users, password: password}
}

// Create registers a new account.
// Failures: UserErrUnknown, UserErrAlreadyExists, UserErrPasswordTooSimple.
//
// The existence check runs before the password check. It is not atomic with
// Save; the storage's unique index on live usernames settles a race, and the
// loser gets UserErrUnknown.
func (s *UserService) Create(ctx context.Context, username, plain string) result.Result[UserError, *domain.User] {
	existing := s.users.FindByUsername(ctx, username)
	if existing.IsSuccess() {
		return result.Failure[*domain.User](UserErrAlreadyExists)
	}
	switch existing.Err() {
	case repository.ErrNotFound:
	case repository.ErrUnknown:
		return result.Failure[*domain.User](UserErrUnknown)
	default:
		panic(fmt.Sprintf("unreachable repository error %d", existing.Err()))
	}

	if s.password.TooSimple(plain) {
		return result.Failure[*domain.User](UserErrPasswordTooSimple)
	}

	hash := s.password.Hash(plain)
	if hash.IsFailure() {
		return result.Failure[*domain.User](UserErrUnknown)
	}

	saved := s.users.Save(ctx, domain.NewUser{Username: username, PasswordHash: hash.Value()})
	if saved.IsFailure() {
		return result.Failure[*domain.User](UserErrUnknown)
	}
	return result.Success[UserError](saved.Value())
}

// FindByID failures: UserErrUnknown, UserErrNotFound.
func (s *UserService) FindByID(ctx context.Context, id string) result.Result[UserError, *domain.User] {
	found := s.users.FindByID(ctx, id)
	if found.IsFailure() {
		return result.Failure[*domain.User](userErrorFrom(found.Err()))
	}
	return result.Success[UserError](found.Value())
}

// FindByUsername failures: UserErrUnknown, UserErrNotFound.
func (s *UserService) FindByUsername(ctx context.Context, username string) result.Result[UserError, *domain.User] {
	found := s.users.FindByUsername(ctx, username)
	if found.IsFailure() {
		return result.Failure[*domain.User](userErrorFrom(found.Err()))
	}
	return result.Success[UserError](found.Value())
}

// Update applies the fields set in upd to the stored user. A new password is
// checked and hashed before it is persisted.
// Failures: UserErrUnknown, UserErrNotFound, UserErrPasswordTooSimple.
func (s *UserService) Update(ctx context.Context, upd domain.UserUpdate) result.Result[UserError, *domain.User] {
	found := s.FindByID(ctx, upd.ID)
	if found.IsFailure() {
		return found
	}

	user := *found.Value()
	if upd.Username != nil {
		user.Username = *upd.Username
	}
	if upd.Password != nil {
		if s.password.TooSimple(*upd.Password) {
			return result.Failure[*domain.User](UserErrPasswordTooSimple)
		}
		hash := s.password.Hash(*upd.Password)
		if hash.IsFailure() {
			return result.Failure[*domain.User](UserErrUnknown)
		}
		user.Password = hash.Value()
	}

	updated := s.users.Update(ctx, &user)
	if updated.IsFailure() {
		return result.Failure[*domain.User](userErrorFrom(updated.Err()))
	}
	return result.Success[UserError](updated.Value())
}

// Delete removes the user and returns its last stored state.
// Failures: UserErrUnknown, UserErrNotFound.
func (s *UserService) Delete(ctx context.Context, id string) result.Result[UserError, *domain.User] {
	found := s.FindByID(ctx, id)
	if found.IsFailure() {
		return found
	}

	if deleted := s.users.Delete(ctx, id); deleted.IsFailure() {
		return result.Failure[*domain.User](userErrorFrom(deleted.Err()))
	}
	return found
}

func userErrorFrom(e repository.Error) UserError {
	switch e {
	case repository.ErrUnknown:
		return UserErrUnknown
	case repository.ErrNotFound:
		return UserErrNotFound
	}
	panic(fmt.Sprintf("unreachable repository error %d", e))
}
