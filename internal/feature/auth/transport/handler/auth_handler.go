// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace_backend/internal/feature/auth/domain/entity"
	"marketplace_backend/internal/feature/auth/transport/http/dto"
	"marketplace_backend/internal/feature/auth/usecase"
	jwtmw "marketplace_backend/internal/platform/jwt"
)

// AuthUsecase defines the auth operations used by this handler.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and issues a token.
	Register(ctx context.Context, name, email, phone, password string) (*usecase.AuthResult, error)
	// Login authenticates a user and issues a token.
	Login(ctx context.Context, email, password string) (*usecase.AuthResult, error)
	// CurrentUser resolves a token subject to the stored user.
	CurrentUser(ctx context.Context, id uint) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// userOut projects the public user fields.
func userOut(u *entity.User) dto.UserOut {
	return dto.UserOut{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}

// Register handles the account creation endpoint.
// - 400 on validation failure
// - 409 when the email is already registered
// - 201 with token and public user fields on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	res, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register rejected", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "email already exists"})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "registration failed"})
		return
	}
	slog.Info("user registered", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthResponse{Message: "User created", Token: res.Token, User: userOut(res.User)})
}

// Login handles the login endpoint.
// - 400 on validation failure
// - 401 on authentication failure, with a constant message regardless of
//   whether the email exists
// - 500 when token issuance or another internal step fails
// - 200 with token and public user fields on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid email or password"})
			return
		}
		slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		return
	}
	slog.Info("user login successful", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthResponse{Message: "Login successful", Token: res.Token, User: userOut(res.User)})
}

// Me returns the user resolved from the bearer token.
// The middleware already verified the token; this re-checks that the
// identity still exists.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("current user lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, userOut(user))
}
