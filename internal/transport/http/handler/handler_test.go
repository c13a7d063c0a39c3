package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/result"
	"github.com/ErlanBelekov/task-tracker/internal/transport/http/middleware"
	"github.com/ErlanBelekov/task-tracker/internal/usecase"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// asUser stands in for the Auth middleware.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return body.Error
}

// ---- fakes ----

type fakeAuthUsecase struct {
	register func(ctx context.Context, username, password string) result.Result[usecase.AuthError, *domain.User]
	login    func(ctx context.Context, username, password string) result.Result[usecase.AuthError, domain.Session]
}

func (f *fakeAuthUsecase) Register(ctx context.Context, username, password string) result.Result[usecase.AuthError, *domain.User] {
	return f.register(ctx, username, password)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, username, password string) result.Result[usecase.AuthError, domain.Session] {
	return f.login(ctx, username, password)
}

type fakeUserUsecase struct {
	getUser    func(ctx context.Context, id string) result.Result[usecase.UserError, *domain.User]
	updateUser func(ctx context.Context, upd domain.UserUpdate) result.Result[usecase.UserError, *domain.User]
	deleteUser func(ctx context.Context, id string) result.Result[usecase.UserError, *domain.User]
}

func (f *fakeUserUsecase) GetUser(ctx context.Context, id string) result.Result[usecase.UserError, *domain.User] {
	return f.getUser(ctx, id)
}

func (f *fakeUserUsecase) UpdateUser(ctx context.Context, upd domain.UserUpdate) result.Result[usecase.UserError, *domain.User] {
	return f.updateUser(ctx, upd)
}

func (f *fakeUserUsecase) DeleteUser(ctx context.Context, id string) result.Result[usecase.UserError, *domain.User] {
	return f.deleteUser(ctx, id)
}

type fakeTaskUsecase struct {
	create          func(ctx context.Context, task domain.NewTask) result.Result[usecase.TaskError, *domain.Task]
	getTask         func(ctx context.Context, taskID, userID string) result.Result[usecase.TaskError, *domain.Task]
	updateTask      func(ctx context.Context, taskID, userID string, upd domain.TaskUpdate) result.Result[usecase.TaskError, *domain.Task]
	deleteTask      func(ctx context.Context, taskID, userID string) result.Result[usecase.TaskError, *domain.Task]
	getAll          func(ctx context.Context, userID string) result.Result[usecase.TaskError, []*domain.Task]
	getCompleted    func(ctx context.Context, userID string) result.Result[usecase.TaskError, []*domain.Task]
	getNotCompleted func(ctx context.Context, userID string) result.Result[usecase.TaskError, []*domain.Task]
}

func (f *fakeTaskUsecase) Create(ctx context.Context, task domain.NewTask) result.Result[usecase.TaskError, *domain.Task] {
	return f.create(ctx, task)
}

func (f *fakeTaskUsecase) GetTask(ctx context.Context, taskID, userID string) result.Result[usecase.TaskError, *domain.Task] {
	return f.getTask(ctx, taskID, userID)
}

func (f *fakeTaskUsecase) UpdateTask(ctx context.Context, taskID, userID string, upd domain.TaskUpdate) result.Result[usecase.TaskError, *domain.Task] {
	return f.updateTask(ctx, taskID, userID, upd)
}

func (f *fakeTaskUsecase) DeleteTask(ctx context.Context, taskID, userID string) result.Result[usecase.TaskError, *domain.Task] {
	return f.deleteTask(ctx, taskID, userID)
}

func (f *fakeTaskUsecase) GetAll(ctx context.Context, userID string) result.Result[usecase.TaskError, []*domain.Task] {
	return f.getAll(ctx, userID)
}

func (f *fakeTaskUsecase) GetCompleted(ctx context.Context, userID string) result.Result[usecase.TaskError, []*domain.Task] {
	return f.getCompleted(ctx, userID)
}

func (f *fakeTaskUsecase) GetNotCompleted(ctx context.Context, userID string) result.Result[usecase.TaskError, []*domain.Task] {
	return f.getNotCompleted(ctx, userID)
}
