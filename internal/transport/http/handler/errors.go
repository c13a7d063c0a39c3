package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/task-tracker/internal/metrics"
	"github.com/ErlanBelekov/task-tracker/internal/usecase"
	"github.com/gin-gonic/gin"
)

const (
	errInternalServer     = "Internal server error"
	errUserNotFound       = "User not found"
	errUserAlreadyExists  = "User with this username already exists"
	errPasswordTooSimple  = "Password is too simple"
	errPasswordNotMatch   = "Password does not match"
	errTaskNotFound       = "Task not found"
	errTaskNotBelongToYou = "Task does not belong to the current user"
)

func userStatus(e usecase.UserError) (int, string) {
	switch e {
	case usecase.UserErrUnknown:
		return http.StatusInternalServerError, errInternalServer
	case usecase.UserErrNotFound:
		return http.StatusNotFound, errUserNotFound
	case usecase.UserErrAlreadyExists:
		return http.StatusConflict, errUserAlreadyExists
	case usecase.UserErrPasswordTooSimple:
		return http.StatusBadRequest, errPasswordTooSimple
	}
	panic(fmt.Sprintf("unreachable user use case error %d", e))
}

func taskStatus(e usecase.TaskError) (int, string) {
	switch e {
	case usecase.TaskErrUnknown:
		return http.StatusInternalServerError, errInternalServer
	case usecase.TaskErrNotFound:
		return http.StatusNotFound, errTaskNotFound
	case usecase.TaskErrNotBelongingToUser:
		return http.StatusForbidden, errTaskNotBelongToYou
	}
	panic(fmt.Sprintf("unreachable task use case error %d", e))
}

func authStatus(e usecase.AuthError) (int, string) {
	switch e {
	case usecase.AuthErrUnknown:
		return http.StatusInternalServerError, errInternalServer
	case usecase.AuthErrNotFound:
		return http.StatusNotFound, errUserNotFound
	case usecase.AuthErrPasswordNotMatching:
		return http.StatusUnauthorized, errPasswordNotMatch
	case usecase.AuthErrAlreadyExists:
		return http.StatusConflict, errUserAlreadyExists
	case usecase.AuthErrPasswordTooSimple:
		return http.StatusBadRequest, errPasswordTooSimple
	}
	panic(fmt.Sprintf("unreachable auth use case error %d", e))
}

// fail writes the error body for a use case failure and counts it. Only
// 5xx responses are logged; everything else is an expected outcome.
func fail(c *gin.Context, logger *slog.Logger, op string, tag fmt.Stringer, status int, msg string) {
	metrics.UsecaseFailuresTotal.WithLabelValues(op, tag.String()).Inc()
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(c.Request.Context(), op, "error", tag.String())
	}
	c.JSON(status, gin.H{"error": msg})
}
