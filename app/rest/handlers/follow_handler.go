package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
)

// FollowHandler handles following HTTP requests
type FollowHandler struct {
	followUsecase port.FollowUsecase
	logger        *slog.Logger
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(followUsecase port.FollowUsecase, logger *slog.Logger) *FollowHandler {
	return &FollowHandler{
		followUsecase: followUsecase,
		logger:        logger,
	}
}

type followRequest struct {
	FollowerUsername string `json:"follower_username"`
	FollowedUsername string `json:"followed_username"`
}

type followedUsersRequest struct {
	User string `json:"user"`
}

// FollowUser records that one user follows another
func (h *FollowHandler) FollowUser(c echo.Context) error {
	var req followRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Invalid request body"})
	}

	err := h.followUsecase.FollowUser(c.Request().Context(), req.FollowerUsername, req.FollowedUsername)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, StatusResponse{Status: "Success", Message: "Followed successfully"})
	case errors.Is(err, domain.ErrAlreadyFollowing):
		return c.JSON(http.StatusConflict, StatusResponse{Status: "Error", Message: "Already following this user"})
	case errors.Is(err, domain.ErrSelfFollow):
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Cannot follow yourself"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Both usernames are required"})
	default:
		h.logger.Error("follow failed", "error", err, "follower", req.FollowerUsername)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}
}

// GetFollowedUsers lists who a user follows. The body is a bare JSON
// array; the client iterates it directly.
func (h *FollowHandler) GetFollowedUsers(c echo.Context) error {
	var req followedUsersRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Invalid request body"})
	}

	followed, err := h.followUsecase.GetFollowedUsers(c.Request().Context(), req.User)
	switch {
	case err == nil:
		users := make([]FollowedUser, 0, len(followed))
		for _, username := range followed {
			users = append(users, FollowedUser{Username: username})
		}
		return c.JSON(http.StatusOK, users)
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Username is required"})
	default:
		h.logger.Error("list followed failed", "error", err, "user", req.User)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}
}
