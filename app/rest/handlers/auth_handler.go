package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
	"chronicle-service/app/utils/validator"
)

// AuthHandler handles account HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator.New(),
		logger:      logger,
	}
}

type checkLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// signUpRequest imposes no password or username shape rules beyond
// presence: the deployed client registers short free-form credentials and
// they must keep working. max=72 is bcrypt's input ceiling, not policy.
type signUpRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type usernameRequest struct {
	Username string `json:"username"`
}

// CheckLogin verifies a username/password pair
func (h *AuthHandler) CheckLogin(c echo.Context) error {
	var req checkLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Invalid request body"})
	}

	err := h.authUsecase.CheckLogin(c.Request().Context(), req.Username, req.Password)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, StatusResponse{Status: "Success", Message: "Login successful"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, StatusResponse{Status: "Error", Message: "Invalid username or password"})
	case errors.Is(err, domain.ErrAccountDeactivated):
		return c.JSON(http.StatusForbidden, StatusResponse{Status: "Error", Message: "Account is deactivated"})
	default:
		h.logger.Error("login check failed", "error", err, "username", req.Username)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}
}

// SignUp registers a new account
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: err.Error()})
	}

	_, err := h.authUsecase.SignUp(c.Request().Context(), req.Username, req.Password, req.Email)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, StatusResponse{Status: "Success", Message: "User registered successfully"})
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return c.JSON(http.StatusConflict, StatusResponse{Status: "Error", Message: "Username is already registered"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.JSON(http.StatusConflict, StatusResponse{Status: "Error", Message: "Email is already registered"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Username and password are required"})
	default:
		h.logger.Error("sign up failed", "error", err, "username", req.Username)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}
}

// DeactivateUser flags an account as deactivated
func (h *AuthHandler) DeactivateUser(c echo.Context) error {
	var req usernameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Invalid request body"})
	}

	err := h.authUsecase.DeactivateUser(c.Request().Context(), req.Username)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, StatusResponse{
			Status:  "Success",
			Message: fmt.Sprintf("User %s has been deactivated", req.Username),
		})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, StatusResponse{Status: "Error", Message: "User not found"})
	default:
		h.logger.Error("deactivate failed", "error", err, "username", req.Username)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}
}

// ReactivateUser clears the deactivated flag
func (h *AuthHandler) ReactivateUser(c echo.Context) error {
	var req usernameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Invalid request body"})
	}

	err := h.authUsecase.ReactivateUser(c.Request().Context(), req.Username)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, StatusResponse{
			Status:  "Success",
			Message: fmt.Sprintf("User %s has been reactivated", req.Username),
		})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, StatusResponse{Status: "Error", Message: "User not found"})
	default:
		h.logger.Error("reactivate failed", "error", err, "username", req.Username)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}
}

// DeleteUser removes the account row entirely
func (h *AuthHandler) DeleteUser(c echo.Context) error {
	var req usernameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Invalid request body"})
	}

	err := h.authUsecase.DeleteUser(c.Request().Context(), req.Username)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, StatusResponse{
			Status:  "Success",
			Message: fmt.Sprintf("User %s has been deleted.", req.Username),
		})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, StatusResponse{
			Status:  "Error",
			Message: fmt.Sprintf("User %s not found.", req.Username),
		})
	default:
		h.logger.Error("delete failed", "error", err, "username", req.Username)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}
}
