package service

import (
	"github.com/ErlanBelekov/task-tracker/internal/password"
	"github.com/ErlanBelekov/task-tracker/internal/result"
)

// PasswordPolicy is satisfied by *password.Policy.
type PasswordPolicy interface {
	// TooSimple reports whether plain fails the complexity check.
	TooSimple(plain string) bool
	Hash(plain string) result.Result[password.Error, string]
	Compare(hash, plain string) result.Result[password.Error, struct{}]
}

// TokenIssuer is satisfied by *token.JWTIssuer.
type TokenIssuer interface {
	CreateToken(subjectID string) (string, error)
}
