package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
)

// TweetHandler handles tweet HTTP requests
type TweetHandler struct {
	tweetUsecase port.TweetUsecase
	logger       *slog.Logger
}

// NewTweetHandler creates a new tweet handler
func NewTweetHandler(tweetUsecase port.TweetUsecase, logger *slog.Logger) *TweetHandler {
	return &TweetHandler{
		tweetUsecase: tweetUsecase,
		logger:       logger,
	}
}

type tweetLinkRequest struct {
	Link string `json:"link"`
}

// GetTweets returns up to the configured cap of matching tweets
func (h *TweetHandler) GetTweets(c echo.Context) error {
	return h.listTweets(c, true)
}

// GetAllTweets returns every matching tweet with no cap
func (h *TweetHandler) GetAllTweets(c echo.Context) error {
	return h.listTweets(c, false)
}

func (h *TweetHandler) listTweets(c echo.Context, capped bool) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Invalid request body"})
	}

	tweets, err := h.tweetUsecase.GetTweets(c.Request().Context(), req.Category, capped)
	if err != nil {
		h.logger.Error("tweet list failed", "error", err, "category", req.Category)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}

	if len(tweets) == 0 {
		return c.JSON(http.StatusOK, StatusResponse{Status: "No tweets found"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "Tweets found", Data: tweets})
}

// GetTweetByLink returns a single tweet addressed by its permalink
func (h *TweetHandler) GetTweetByLink(c echo.Context) error {
	var req tweetLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Error: "Tweet link is required"})
	}
	if req.Link == "" {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Error: "Tweet link is required"})
	}

	tweet, err := h.tweetUsecase.GetTweetByLink(c.Request().Context(), req.Link)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, StatusResponse{Status: "Tweet found", Data: tweet})
	case errors.Is(err, domain.ErrTweetNotFound):
		return c.JSON(http.StatusOK, StatusResponse{Status: "No tweet found with the given link"})
	default:
		h.logger.Error("tweet lookup failed", "error", err, "link", req.Link)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}
}

// GetTrendingTweets returns the most-favorited tweets of the freshest
// 2-day window in the data
func (h *TweetHandler) GetTrendingTweets(c echo.Context) error {
	tweets, err := h.tweetUsecase.GetTrendingTweets(c.Request().Context())
	if err != nil {
		h.logger.Error("trending lookup failed", "error", err)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}

	if len(tweets) == 0 {
		return c.JSON(http.StatusOK, StatusResponse{Status: "No tweets found"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "Success", Data: tweets})
}
