package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/result"
	"github.com/ErlanBelekov/task-tracker/internal/transport/http/middleware"
	"github.com/ErlanBelekov/task-tracker/internal/usecase"
	"github.com/gin-gonic/gin"
)

type taskUsecaser interface {
	Create(ctx context.Context, task domain.NewTask) result.Result[usecase.TaskError, *domain.Task]
	GetTask(ctx context.Context, taskID, userID string) result.Result[usecase.TaskError, *domain.Task]
	UpdateTask(ctx context.Context, taskID, userID string, upd domain.TaskUpdate) result.Result[usecase.TaskError, *domain.Task]
	DeleteTask(ctx context.Context, taskID, userID string) result.Result[usecase.TaskError, *domain.Task]
	GetAll(ctx context.Context, userID string) result.Result[usecase.TaskError, []*domain.Task]
	GetCompleted(ctx context.Context, userID string) result.Result[usecase.TaskError, []*domain.Task]
	GetNotCompleted(ctx context.Context, userID string) result.Result[usecase.TaskError, []*domain.Task]
}

type TaskHandler struct {
	taskUsecase taskUsecaser
	logger      *slog.Logger
}

func NewTaskHandler(taskUsecase taskUsecaser, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
		logger:      logger.With("component", "task_handler"),
	}
}

type createTaskRequest struct {
	Title       string `json:"title"        binding:"required,max=255"`
	Description string `json:"description"  binding:"max=4096"`
	IsCompleted bool   `json:"is_completed"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"        binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"  binding:"omitempty,max=4096"`
	IsCompleted *bool   `json:"is_completed"`
}

// POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r := h.taskUsecase.Create(c.Request.Context(), domain.NewTask{
		UserID:      c.GetString(middleware.UserIDKey),
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	})
	h.respondOne(c, "create_task", http.StatusCreated, r)
}

// GET /tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	r := h.taskUsecase.GetTask(c.Request.Context(), c.Param("id"), c.GetString(middleware.UserIDKey))
	h.respondOne(c, "get_task", http.StatusOK, r)
}

// PATCH /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r := h.taskUsecase.UpdateTask(c.Request.Context(), c.Param("id"), c.GetString(middleware.UserIDKey), domain.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	})
	h.respondOne(c, "update_task", http.StatusOK, r)
}

// DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	r := h.taskUsecase.DeleteTask(c.Request.Context(), c.Param("id"), c.GetString(middleware.UserIDKey))
	h.respondOne(c, "delete_task", http.StatusOK, r)
}

// GET /tasks
func (h *TaskHandler) List(c *gin.Context) {
	h.respondMany(c, "list_tasks", h.taskUsecase.GetAll(c.Request.Context(), c.GetString(middleware.UserIDKey)))
}

// GET /tasks/completed
func (h *TaskHandler) ListCompleted(c *gin.Context) {
	h.respondMany(c, "list_completed_tasks", h.taskUsecase.GetCompleted(c.Request.Context(), c.GetString(middleware.UserIDKey)))
}

// GET /tasks/not-completed
func (h *TaskHandler) ListNotCompleted(c *gin.Context) {
	h.respondMany(c, "list_not_completed_tasks", h.taskUsecase.GetNotCompleted(c.Request.Context(), c.GetString(middleware.UserIDKey)))
}

func (h *TaskHandler) respondOne(c *gin.Context, op string, okStatus int, r result.Result[usecase.TaskError, *domain.Task]) {
	if r.IsFailure() {
		status, msg := taskStatus(r.Err())
		fail(c, h.logger, op, r.Err(), status, msg)
		return
	}
	c.JSON(okStatus, newTaskResponse(r.Value()))
}

func (h *TaskHandler) respondMany(c *gin.Context, op string, r result.Result[usecase.TaskError, []*domain.Task]) {
	if r.IsFailure() {
		status, msg := taskStatus(r.Err())
		fail(c, h.logger, op, r.Err(), status, msg)
		return
	}
	c.JSON(http.StatusOK, newListTasksResponse(r.Value()))
}
