package service

import "fmt"

// UserError is the closed set of user service failures.
type UserError int

const (
	UserErrUnknown UserError = iota
	UserErrNotFound
	UserErrAlreadyExists
	UserErrPasswordTooSimple
)

func (e UserError) String() string {
	switch e {
	case UserErrUnknown:
		return "unknown error"
	case UserErrNotFound:
		return "user not found"
	case UserErrAlreadyExists:
		return "user already exists"
	case UserErrPasswordTooSimple:
		return "password too simple"
	}
	return fmt.Sprintf("UserError(%d)", int(e))
}

// TaskError is the closed set of task service failures.
type TaskError int

const (
	TaskErrUnknown TaskError = iota
	TaskErrNotFound
	TaskErrNotBelongingToUser
)

func (e TaskError) String() string {
	switch e {
	case TaskErrUnknown:
		return "unknown error"
	case TaskErrNotFound:
		return "task not found"
	case TaskErrNotBelongingToUser:
		return "task does not belong to user"
	}
	return fmt.Sprintf("TaskError(%d)", int(e))
}

// AuthError is the closed set of auth service failures.
type AuthError int

const (
	AuthErrUnknown AuthError = iota
	AuthErrNotFound
	AuthErrPasswordNotMatching
)

func (e AuthError) String() string {
	switch e {
	case AuthErrUnknown:
		return "unknown error"
	case AuthErrNotFound:
		return "user not found"
	case AuthErrPasswordNotMatching:
		return "password does not match"
	}
	return fmt.Sprintf("AuthError(%d)", int(e))
}
