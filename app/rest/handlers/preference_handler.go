package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
	"chronicle-service/app/utils/validator"
)

// PreferenceHandler handles category preference HTTP requests
type PreferenceHandler struct {
	prefUsecase port.PreferenceUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(prefUsecase port.PreferenceUsecase, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		prefUsecase: prefUsecase,
		validator:   validator.New(),
		logger:      logger,
	}
}

type addPreferenceRequest struct {
	Username   string `json:"username" validate:"required"`
	Preference string `json:"preference" validate:"required,preference"`
}

// AddPreference stores one (username, preference) pair
func (h *PreferenceHandler) AddPreference(c echo.Context) error {
	var req addPreferenceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: err.Error()})
	}

	err := h.prefUsecase.AddPreference(c.Request().Context(), req.Username, req.Preference)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, StatusResponse{Status: "Success", Message: "Preference added successfully"})
	case errors.Is(err, domain.ErrPreferenceExists):
		return c.JSON(http.StatusConflict, StatusResponse{Status: "Error", Message: "Preference already exists for this username"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Username and preference are required"})
	default:
		h.logger.Error("add preference failed", "error", err, "username", req.Username)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}
}

// CheckPreferences returns the stored preferences for a user. A user with
// none gets a 404; the client routes them through onboarding.
func (h *PreferenceHandler) CheckPreferences(c echo.Context) error {
	var req usernameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Invalid request body"})
	}

	prefs, err := h.prefUsecase.CheckPreferences(c.Request().Context(), req.Username)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, StatusResponse{Status: "Success", Message: "Preferences found", Data: prefs})
	case errors.Is(err, domain.ErrNoPreferencesFound):
		return c.JSON(http.StatusNotFound, StatusResponse{Status: "Error", Message: "No preferences found for this username"})
	default:
		h.logger.Error("check preferences failed", "error", err, "username", req.Username)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}
}

// DeletePreferences clears a user's full preference set
func (h *PreferenceHandler) DeletePreferences(c echo.Context) error {
	var req usernameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Invalid request body"})
	}

	err := h.prefUsecase.DeletePreferences(c.Request().Context(), req.Username)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, StatusResponse{Status: "Success", Message: "Preferences deleted successfully"})
	case errors.Is(err, domain.ErrNoPreferencesFound):
		return c.JSON(http.StatusNotFound, StatusResponse{Status: "Error", Message: "No preferences found for this username"})
	default:
		h.logger.Error("delete preferences failed", "error", err, "username", req.Username)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}
}
