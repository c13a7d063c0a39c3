package usecase

import (
	"fmt"

	"github.com/ErlanBelekov/task-tracker/internal/service"
)

// UserError is the closed set of user use case failures.
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

// TaskError is the closed set of task use case failures.
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

// AuthError is the closed set of auth use case failures. Register goes
// through the user service, so it carries the user creation tags too.
type AuthError int

const (
	AuthErrUnknown AuthError = iota
	AuthErrNotFound
	AuthErrPasswordNotMatching
	AuthErrAlreadyExists
	AuthErrPasswordTooSimple
)

func (e AuthError) String() string {
	switch e {
	case AuthErrUnknown:
		return "unknown error"
	case AuthErrNotFound:
		return "user not found"
	case AuthErrPasswordNotMatching:
		return "password does not match"
	case AuthErrAlreadyExists:
		return "user already exists"
	case AuthErrPasswordTooSimple:
		return "password too simple"
	}
	return fmt.Sprintf("AuthError(%d)", int(e))
}

func userErrorFrom(e service.UserError) UserError {
	switch e {
	case service.UserErrUnknown:
		return UserErrUnknown
	case service.UserErrNotFound:
		return UserErrNotFound
	case service.UserErrAlreadyExists:
		return UserErrAlreadyExists
	case service.UserErrPasswordTooSimple:
		return UserErrPasswordTooSimple
	}
	panic(fmt.Sprintf("unreachable user service error %d", e))
}

func taskErrorFrom(e service.TaskError) TaskError {
	switch e {
	case service.TaskErrUnknown:
		return TaskErrUnknown
	case service.TaskErrNotFound:
		return TaskErrNotFound
	case service.TaskErrNotBelongingToUser:
		return TaskErrNotBelongingToUser
	}
	panic(fmt.Sprintf("unreachable task service error %d", e))
}

func authErrorFromAuth(e service.AuthError) AuthError {
	switch e {
	case service.AuthErrUnknown:
		return AuthErrUnknown
	case service.AuthErrNotFound:
		return AuthErrNotFound
	case service.AuthErrPasswordNotMatching:
		return AuthErrPasswordNotMatching
	}
	panic(fmt.Sprintf("unreachable auth service error %d", e))
}

func authErrorFromUser(e service.UserError) AuthError {
	switch e {
	case service.UserErrUnknown:
		return AuthErrUnknown
	case service.UserErrNotFound:
		return AuthErrNotFound
	case service.UserErrAlreadyExists:
		return AuthErrAlreadyExists
	case service.UserErrPasswordTooSimple:
		return AuthErrPasswordTooSimple
	}
	panic(fmt.Sprintf("unreachable user service error %d", e))
}
