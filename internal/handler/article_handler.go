package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"inkwell/internal/auth"
	"inkwell/internal/errors"
	"inkwell/internal/service"
)

// ArticleHandler handles article endpoints.
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ArticleRequest represents an article create or update payload.
type ArticleRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// ListArticles godoc
// @Summary List all articles, newest first
// @Tags articles
// @Produce json
// @Success 200 {array} model.Article
// @Failure 500 {object} errors.ErrorResponse
// @Router /articles/all [get]
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	articles, err := h.articleService.ListArticles(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, articles)
}

// ListByUser godoc
// @Summary List a user's articles, newest first
// @Tags articles
// @Produce json
// @Param id path string true "Author ID"
// @Success 200 {array} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Router /articles/user/{id} [get]
func (h *ArticleHandler) ListByUser(c echo.Context) error {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	articles, err := h.articleService.ListByAuthor(c.Request().Context(), authorID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, articles)
}

// GetArticle godoc
// @Summary Get a single article
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Router /articles/article/{id} [get]
func (h *ArticleHandler) GetArticle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	article, err := h.articleService.GetArticle(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, article)
}

// Create godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ArticleRequest true "Article payload"
// @Success 201 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /articles/add [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	identity, ok := auth.CurrentUser(c)
	if !ok {
		httpErr := errors.MapErrorToHTTP(errors.ErrMissingToken)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrValidation)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	article, err := h.articleService.CreateArticle(c.Request().Context(), identity.ID, req.Title, req.Body)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, article)
}

// Update godoc
// @Summary Update an owned article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param request body ArticleRequest true "Article payload"
// @Success 201 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Router /articles/edit/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	identity, ok := auth.CurrentUser(c)
	if !ok {
		httpErr := errors.MapErrorToHTTP(errors.ErrMissingToken)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	article, err := h.articleService.UpdateArticle(c.Request().Context(), identity.ID, id, req.Title, req.Body)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, article)
}

// Delete godoc
// @Summary Delete an owned article
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /articles/delete/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	identity, ok := auth.CurrentUser(c)
	if !ok {
		httpErr := errors.MapErrorToHTTP(errors.ErrMissingToken)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.articleService.DeleteArticle(c.Request().Context(), identity.ID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "article deleted",
	})
}
