// Package result provides a two-variant container used to pass outcomes
// between the repository, service and use case layers.
//
// A Result holds either a success value of type T or a failure tag of type E,
// never both. The zero Result holds neither and every accessor except
// IsFailure/IsSuccess panics on it.
package result

import "fmt"

type state uint8

const (
	unset state = iota
	ok
	failed
)

type Result[E any, T any] struct {
	value T
	err   E
	state state
}

// Success wraps value. E must be given explicitly: Success[MyErr](v).
func Success[E any, T any](value T) Result[E, T] {
	return Result[E, T]{value: value, state: ok}
}

// Failure wraps the error tag err. T must be given explicitly: Failure[*User](tag).
func Failure[T any, E any](err E) Result[E, T] {
	return Result[E, T]{err: err, state: failed}
}

func (r Result[E, T]) IsFailure() bool { return r.state == failed }

func (r Result[E, T]) IsSuccess() bool { return r.state == ok }

// Value returns the success payload. Calling it on a failure is a programming error.
func (r Result[E, T]) Value() T {
	if r.state != ok {
		panic(fmt.Sprintf("result: Value called on %s result", r.state))
	}
	return r.value
}

// Err returns the failure tag. Calling it on a success is a programming error.
func (r Result[E, T]) Err() E {
	if r.state != failed {
		panic(fmt.Sprintf("result: Err called on %s result", r.state))
	}
	return r.err
}

// Unpack returns the payload, the tag and true on success. On failure the
// payload is the zero T and the boolean is false.
func (r Result[E, T]) Unpack() (T, E, bool) {
	if r.state == unset {
		panic("result: Unpack called on unset result")
	}
	return r.value, r.err, r.state == ok
}

// Map applies f to the success payload and keeps a failure tag untouched.
func Map[E any, T any, U any](r Result[E, T], f func(T) U) Result[E, U] {
	if r.IsFailure() {
		return Failure[U](r.Err())
	}
	return Success[E](f(r.Value()))
}

func (s state) String() string {
	switch s {
	case ok:
		return "success"
	case failed:
		return "failure"
	default:
		return "unset"
	}
}
