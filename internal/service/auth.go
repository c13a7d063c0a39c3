package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/password"
	"github.com/ErlanBelekov/task-tracker/internal/repository"
	"github.com/ErlanBelekov/task-tracker/internal/result"
)

type AuthService struct {
	users    repository.UserRepository
	password PasswordPolicy
	tokens   TokenIssuer
	logger   *slog.Logger
}

func NewAuthService(users repository.UserRepository, password PasswordPolicy, tokens TokenIssuer, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		password: password,
		tokens:   tokens,
		logger:   logger.With("component", "auth_service"),
	}
}

// Login verifies the credentials and mints a token for the user.
// Failures: AuthErrUnknown, AuthErrNotFound, AuthErrPasswordNotMatching.
func (s *AuthService) Login(ctx context.Context, username, plain string) result.Result[AuthError, domain.Session] {
	found := s.users.FindByUsername(ctx, username)
	if found.IsFailure() {
		switch found.Err() {
		case repository.ErrUnknown:
			return result.Failure[domain.Session](AuthErrUnknown)
		case repository.ErrNotFound:
			return result.Failure[domain.Session](AuthErrNotFound)
		}
		panic(fmt.Sprintf("unreachable repository error %d", found.Err()))
	}
	user := found.Value()

	if cmp := s.password.Compare(user.Password, plain); cmp.IsFailure() {
		switch cmp.Err() {
		case password.ErrMismatch:
			return result.Failure[domain.Session](AuthErrPasswordNotMatching)
		case password.ErrUnknown:
			return result.Failure[domain.Session](AuthErrUnknown)
		}
		panic(fmt.Sprintf("unreachable password error %d", cmp.Err()))
	}

	tok, err := s.tokens.CreateToken(user.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "create token", "user_id", user.ID, "error", err)
		return result.Failure[domain.Session](AuthErrUnknown)
	}

	return result.Success[AuthError](domain.Session{
		Token:    tok,
		UserID:   user.ID,
		Username: user.Username,
	})
}
