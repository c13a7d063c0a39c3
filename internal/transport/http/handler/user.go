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

type userUsecaser interface {
	GetUser(ctx context.Context, id string) result.Result[usecase.UserError, *domain.User]
	UpdateUser(ctx context.Context, upd domain.UserUpdate) result.Result[usecase.UserError, *domain.User]
	DeleteUser(ctx context.Context, id string) result.Result[usecase.UserError, *domain.User]
}

// UserHandler serves the authenticated caller's own account.
type UserHandler struct {
	userUsecase userUsecaser
	logger      *slog.Logger
}

func NewUserHandler(userUsecase userUsecaser, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger.With("component", "user_handler"),
	}
}

type updateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=1,max=64"`
	Password *string `json:"password" binding:"omitempty,maxbytes=72"`
}

// GET /user
func (h *UserHandler) Get(c *gin.Context) {
	r := h.userUsecase.GetUser(c.Request.Context(), c.GetString(middleware.UserIDKey))
	h.respond(c, "get_user", http.StatusOK, r)
}

// PATCH /user
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r := h.userUsecase.UpdateUser(c.Request.Context(), domain.UserUpdate{
		ID:       c.GetString(middleware.UserIDKey),
		Username: req.Username,
		Password: req.Password,
	})
	h.respond(c, "update_user", http.StatusOK, r)
}

// DELETE /user
func (h *UserHandler) Delete(c *gin.Context) {
	r := h.userUsecase.DeleteUser(c.Request.Context(), c.GetString(middleware.UserIDKey))
	h.respond(c, "delete_user", http.StatusOK, r)
}

func (h *UserHandler) respond(c *gin.Context, op string, okStatus int, r result.Result[usecase.UserError, *domain.User]) {
	if r.IsFailure() {
		status, msg := userStatus(r.Err())
		fail(c, h.logger, op, r.Err(), status, msg)
		return
	}
	c.JSON(okStatus, newUserResponse(r.Value()))
}
