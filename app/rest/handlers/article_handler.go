package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
)

// ArticleHandler handles article HTTP requests. Missing content is mostly
// reported as a soft status at 200; the client switches on the status
// string, not the HTTP code.
type ArticleHandler struct {
	articleUsecase port.ArticleUsecase
	logger         *slog.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleUsecase port.ArticleUsecase, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleUsecase: articleUsecase,
		logger:         logger,
	}
}

type categoryRequest struct {
	Category string `json:"category"`
}

type articleIDRequest struct {
	ID int64 `json:"id"`
}

// GetArticles returns up to the configured cap of matching articles
func (h *ArticleHandler) GetArticles(c echo.Context) error {
	return h.listArticles(c, true)
}

// GetAllArticles returns every matching article with no cap
func (h *ArticleHandler) GetAllArticles(c echo.Context) error {
	return h.listArticles(c, false)
}

func (h *ArticleHandler) listArticles(c echo.Context, capped bool) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Message: "Invalid request body"})
	}

	articles, err := h.articleUsecase.GetArticles(c.Request().Context(), req.Category, capped)
	if err != nil {
		h.logger.Error("article list failed", "error", err, "category", req.Category)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}

	if len(articles) == 0 {
		return c.JSON(http.StatusOK, StatusResponse{Status: "No articles found"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "Articles found", Data: articles})
}

// GetArticleByID returns a single article
func (h *ArticleHandler) GetArticleByID(c echo.Context) error {
	var req articleIDRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Error: "Article ID is required"})
	}
	if req.ID == 0 {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Error: "Article ID is required"})
	}

	article, err := h.articleUsecase.GetArticleByID(c.Request().Context(), req.ID)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, StatusResponse{Status: "Article found", Data: article})
	case errors.Is(err, domain.ErrArticleNotFound):
		return c.JSON(http.StatusOK, StatusResponse{Status: "No article found with the given ID"})
	default:
		h.logger.Error("article lookup failed", "error", err, "id", req.ID)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}
}

// GetRelated returns the other members of an article's topical cluster.
// An unclustered article yields Success with an empty data array.
func (h *ArticleHandler) GetRelated(c echo.Context) error {
	var req articleIDRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Error: "Article ID is required"})
	}
	if req.ID == 0 {
		return c.JSON(http.StatusBadRequest, StatusResponse{Status: "Error", Error: "Article ID is required"})
	}

	related, err := h.articleUsecase.GetRelated(c.Request().Context(), req.ID)
	switch {
	case err == nil:
		if related == nil {
			related = []domain.Article{}
		}
		return c.JSON(http.StatusOK, StatusResponse{Status: "Success", Data: related})
	case errors.Is(err, domain.ErrArticleNotFound):
		return c.JSON(http.StatusOK, StatusResponse{Status: "No article found with the given ID"})
	default:
		h.logger.Error("related lookup failed", "error", err, "id", req.ID)
		return c.JSON(http.StatusInternalServerError, StatusResponse{Status: "Error", Message: internalErrorMessage})
	}
}
