package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/zyreny/zye/domain"
	"github.com/zyreny/zye/web"
)

// ContentHandler represent the http handler for the news and projects tables
type ContentHandler struct {
	contentUsecase domain.ContentUsecase
	validator      *web.AppValidator
	logger         *zap.Logger
	tracer         trace.Tracer
}

// NewContentHandler will initialize the content endpoints
func NewContentHandler(uc domain.ContentUsecase, v *web.AppValidator, logger *zap.Logger, tracer trace.Tracer) *ContentHandler {
	return &ContentHandler{
		contentUsecase: uc,
		validator:      v,
		logger:         logger,
		tracer:         tracer,
	}
}

// RegisterRoutes adds the content API to echo; writes go through the
// shared-secret gate.
func (h *ContentHandler) RegisterRoutes(e *echo.Echo, apiKey echo.MiddlewareFunc) {
	e.GET("/data/news", h.ListNews)
	e.POST("/data/news", h.AddNews, apiKey)
	e.DELETE("/data/news", h.DeleteNews, apiKey)
	e.DELETE("/data/news/:id", h.DeleteNews, apiKey)

	e.GET("/data/projs", h.ListProjects)
	e.POST("/data/projs", h.AddProject, apiKey)
	e.DELETE("/data/projs", h.DeleteProject, apiKey)
	e.DELETE("/data/projs/:id", h.DeleteProject, apiKey)
}

// ListNews returns news entries, optionally windowed by limit or days
func (h *ContentHandler) ListNews(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Error: err.Error()})
	}
	days, err := queryInt(c, "days")
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Error: err.Error()})
	}

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}

	news, err := h.contentUsecase.ListNews(ctx, limit, days)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err, h.logger), domain.ResponseError{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, news)
}

// AddNews stores a news entry
func (h *ContentHandler) AddNews(c echo.Context) error {
	createNews := new(domain.CreateNews)
	if err := c.Bind(createNews); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Error: err.Error()})
	}

	if err := c.Validate(createNews); err != nil {
		fields := err.(validator.ValidationErrors).Translate(h.validator.Translator)
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Error: "validation error", Fields: fields})
	}

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := h.contentUsecase.AddNews(ctx, *createNews); err != nil {
		return c.JSON(domain.GetStatusCode(err, h.logger), domain.ResponseError{Error: err.Error()})
	}

	return c.NoContent(http.StatusCreated)
}

// DeleteNews deletes the entry with the given id, or the latest one
func (h *ContentHandler) DeleteNews(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Error: err.Error()})
	}

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err = h.contentUsecase.DeleteNews(ctx, id); err != nil {
		return c.JSON(domain.GetStatusCode(err, h.logger), domain.ResponseError{Error: err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

// ListProjects returns project entries, newest first
func (h *ContentHandler) ListProjects(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Error: err.Error()})
	}

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}

	projects, err := h.contentUsecase.ListProjects(ctx, limit)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err, h.logger), domain.ResponseError{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, projects)
}

// AddProject stores a project entry
func (h *ContentHandler) AddProject(c echo.Context) error {
	createProject := new(domain.CreateProject)
	if err := c.Bind(createProject); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Error: err.Error()})
	}

	if err := c.Validate(createProject); err != nil {
		fields := err.(validator.ValidationErrors).Translate(h.validator.Translator)
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Error: "validation error", Fields: fields})
	}

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := h.contentUsecase.AddProject(ctx, *createProject); err != nil {
		return c.JSON(domain.GetStatusCode(err, h.logger), domain.ResponseError{Error: err.Error()})
	}

	return c.NoContent(http.StatusCreated)
}

// DeleteProject deletes the entry with the given id, or the latest one
func (h *ContentHandler) DeleteProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Error: err.Error()})
	}

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err = h.contentUsecase.DeleteProject(ctx, id); err != nil {
		return c.JSON(domain.GetStatusCode(err, h.logger), domain.ResponseError{Error: err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.ErrBadParamInput
	}

	return n, nil
}

func pathID(c echo.Context) (*uint, error) {
	raw := c.Param("id")
	if raw == "" {
		return nil, nil
	}

	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, domain.ErrBadParamInput
	}

	id := uint(n)
	return &id, nil
}
