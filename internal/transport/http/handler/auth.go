package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/metrics"
	"github.com/ErlanBelekov/task-tracker/internal/result"
	"github.com/ErlanBelekov/task-tracker/internal/usecase"
	"github.com/gin-gonic/gin"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, username, password string) result.Result[usecase.AuthError, *domain.User]
	Login(ctx context.Context, username, password string) result.Result[usecase.AuthError, domain.Session]
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

// Password has no "required" tag: an empty password is a business rule
// answered by the use case, not a binding error.
type credentialsRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"maxbytes=72"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, tag, ok := h.authUsecase.Register(c.Request.Context(), req.Username, req.Password).Unpack()
	if !ok {
		status, msg := authStatus(tag)
		fail(c, h.logger, "register", tag, status, msg)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// POST /auth/login
// Returns the session and repeats the token in the Authorization header.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, tag, ok := h.authUsecase.Login(c.Request.Context(), req.Username, req.Password).Unpack()
	if !ok {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		status, msg := authStatus(tag)
		fail(c, h.logger, "login", tag, status, msg)
		return
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.Header("Authorization", "Bearer "+s.Token)
	c.JSON(http.StatusOK, loginResponse{Token: s.Token, UserID: s.UserID, Username: s.Username})
}
