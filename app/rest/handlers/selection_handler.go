package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
)

// ClientIDHeader scopes the selection slots. Callers that send no header
// all share one legacy scope.
const ClientIDHeader = "X-Client-ID"

// SelectionHandler handles the "currently selected" slot HTTP requests.
// Response shapes mirror what the mobile client already parses, quirks
// included: get-username reports an unset slot without an Error status,
// the other two slots with one.
type SelectionHandler struct {
	selectionUsecase port.SelectionUsecase
	logger           *slog.Logger
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(selectionUsecase port.SelectionUsecase, logger *slog.Logger) *SelectionHandler {
	return &SelectionHandler{
		selectionUsecase: selectionUsecase,
		logger:           logger,
	}
}

type setArticleIDRequest struct {
	ID int64 `json:"id"`
}

type setTweetLinkRequest struct {
	Link string `json:"link"`
}

func clientID(c echo.Context) string {
	return c.Request().Header.Get(ClientIDHeader)
}

// SetUsername stores the selected username for the caller's scope
func (h *SelectionHandler) SetUsername(c echo.Context) error {
	var req usernameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Username is required"})
	}

	if err := h.selectionUsecase.SetSelection(clientID(c), domain.SelectionUsername, req.Username); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Username is required"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "Username set successfully"})
}

// GetUsername reads the selected username for the caller's scope
func (h *SelectionHandler) GetUsername(c echo.Context) error {
	username, err := h.selectionUsecase.GetSelection(clientID(c), domain.SelectionUsername)
	if errors.Is(err, domain.ErrSelectionNotSet) {
		return c.JSON(http.StatusOK, StatusResponse{Status: "No username set"})
	}
	return c.JSON(http.StatusOK, UsernameResponse{Username: username})
}

// SetArticleID stores the selected article id for the caller's scope
func (h *SelectionHandler) SetArticleID(c echo.Context) error {
	var req setArticleIDRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Error: "Article ID is required"})
	}

	value := ""
	if req.ID != 0 {
		value = strconv.FormatInt(req.ID, 10)
	}
	if err := h.selectionUsecase.SetSelection(clientID(c), domain.SelectionArticleID, value); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Error: "Article ID is required"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "Success", Message: "Article ID set successfully"})
}

// GetArticleID reads the selected article id for the caller's scope
func (h *SelectionHandler) GetArticleID(c echo.Context) error {
	value, err := h.selectionUsecase.GetSelection(clientID(c), domain.SelectionArticleID)
	if errors.Is(err, domain.ErrSelectionNotSet) {
		return c.JSON(http.StatusOK, StatusResponse{Status: "Error", Message: "No article ID set"})
	}

	// The slot only ever holds ids written by SetArticleID
	id, _ := strconv.ParseInt(value, 10, 64)
	return c.JSON(http.StatusOK, ArticleIDResponse{ArticleID: id})
}

// SetTweetLink stores the selected tweet permalink for the caller's scope
func (h *SelectionHandler) SetTweetLink(c echo.Context) error {
	var req setTweetLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Error: "Tweet link is required"})
	}

	if err := h.selectionUsecase.SetSelection(clientID(c), domain.SelectionTweetLink, req.Link); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Error: "Tweet link is required"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "Success", Message: "Tweet link set successfully"})
}

// GetTweetLink reads the selected tweet permalink for the caller's scope
func (h *SelectionHandler) GetTweetLink(c echo.Context) error {
	value, err := h.selectionUsecase.GetSelection(clientID(c), domain.SelectionTweetLink)
	if errors.Is(err, domain.ErrSelectionNotSet) {
		return c.JSON(http.StatusOK, StatusResponse{Status: "Error", Message: "No tweet link set"})
	}
	return c.JSON(http.StatusOK, TweetLinkResponse{TweetLink: value})
}
