// Package password implements the password policy used by the user and auth
// services: the complexity gate plus bcrypt hashing and verification.
package password

import (
	"errors"

	"github.com/ErlanBelekov/task-tracker/internal/result"
	"golang.org/x/crypto/bcrypt"
)

type Error int

const (
	ErrUnknown Error = iota
	ErrMismatch
)

func (e Error) String() string {
	switch e {
	case ErrUnknown:
		return "unknown error"
	case ErrMismatch:
		return "password mismatch"
	}
	return "invalid password error"
}

type Policy struct {
	cost int
}

// NewPolicy returns a bcrypt-backed policy. A cost outside bcrypt's range
// falls back to bcrypt.DefaultCost.
func NewPolicy(cost int) *Policy {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Policy{cost: cost}
}

// TooSimple rejects the empty password only.
func (p *Policy) TooSimple(plain string) bool {
	return plain == ""
}

func (p *Policy) Hash(plain string) result.Result[Error, string] {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), p.cost)
	if err != nil {
		return result.Failure[string](ErrUnknown)
	}
	return result.Success[Error](string(hash))
}

// Compare checks plain against a stored hash. A wrong password or a stored
// value that is not a usable hash both count as a mismatch.
func (p *Policy) Compare(hash, plain string) result.Result[Error, struct{}] {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return result.Success[Error](struct{}{})
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrHashTooShort):
		return result.Failure[struct{}](ErrMismatch)
	default:
		return result.Failure[struct{}](ErrUnknown)
	}
}
