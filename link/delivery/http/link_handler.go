package http

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/zyreny/zye/domain"
	"github.com/zyreny/zye/web"
	"github.com/zyreny/zye/web/render"
)

const serverErrorPage = "伺服器錯誤"

// LinkHandler represent the http handler for links
type LinkHandler struct {
	linkUsecase domain.LinkUsecase
	renderer    *render.Renderer
	validator   *web.AppValidator
	logger      *zap.Logger
	tracer      trace.Tracer
}

// NewLinkHandler will initialize the link endpoints
func NewLinkHandler(uc domain.LinkUsecase, renderer *render.Renderer, v *web.AppValidator, logger *zap.Logger, tracer trace.Tracer) (*LinkHandler, error) {
	if renderer == nil {
		return nil, fmt.Errorf("link handler needs a page renderer")
	}

	return &LinkHandler{
		linkUsecase: uc,
		renderer:    renderer,
		validator:   v,
		logger:      logger,
		tracer:      tracer,
	}, nil
}

// RegisterRoutes adds the resolver pages and the management API to echo
func (h *LinkHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
	e.GET("/:code", h.Resolve)
	e.POST("/verify", h.Verify)

	e.POST("/api/create", h.Store)
	e.GET("/api/list", h.List)
	e.DELETE("/api/del/:code", h.Delete)
}

// Home serves the landing page of the short domain
func (h *LinkHandler) Home(c echo.Context) error {
	page, err := h.renderer.Render("home", nil)
	if err != nil {
		h.logger.Error("can't render home page: ", zap.Error(err))
		return c.String(http.StatusInternalServerError, serverErrorPage)
	}

	return c.HTML(http.StatusOK, page)
}

// Resolve runs the redirect decision pipeline for one code
func (h *LinkHandler) Resolve(c echo.Context) error {
	code := c.Param("code")

	if err := h.validator.V.Var(code, "required,linkid,max=20"); err != nil {
		return h.renderNotFound(c, code)
	}

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}

	v := domain.Visitor{
		UserAgent: c.Request().UserAgent(),
		Preview:   c.QueryParam("preview") == "1",
	}

	res, err := h.linkUsecase.Resolve(ctx, code, v)
	if err != nil {
		return h.renderResolveError(c, code, err)
	}

	return h.renderResolution(c, code, res)
}

// Verify handles the password form submission
func (h *LinkHandler) Verify(c echo.Context) error {
	code := c.FormValue("code")
	password := c.FormValue("password")

	if code == "" || password == "" {
		return c.String(http.StatusBadRequest, "缺少必要參數")
	}

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}

	v := domain.Visitor{
		UserAgent: c.Request().UserAgent(),
		Preview:   c.QueryParam("preview") == "1",
	}

	res, err := h.linkUsecase.VerifyPassword(ctx, code, password, v)
	if err != nil {
		return h.renderResolveError(c, code, err)
	}

	return h.renderResolution(c, code, res)
}

// renderResolution maps a terminal decision onto the wire
func (h *LinkHandler) renderResolution(c echo.Context, code string, res *domain.Resolution) error {
	switch res.Action {
	case domain.ActionRedirect:
		return c.Redirect(http.StatusFound, res.Location)
	case domain.ActionPassword:
		return h.renderPassword(c, code, res.ErrMsg)
	case domain.ActionPreview:
		return c.HTML(http.StatusOK, res.HTML)
	}

	h.logger.Error("unknown resolution action", zap.Int("action", int(res.Action)))
	return c.String(http.StatusInternalServerError, serverErrorPage)
}

// renderResolveError keeps the human-facing contract: absent and expired
// codes get the identical not-found page, anything else is a plain 500.
func (h *LinkHandler) renderResolveError(c echo.Context, code string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return h.renderNotFound(c, code)
	}

	h.logger.Error("resolution failed: ", zap.String("code", code), zap.Error(err))
	return c.String(http.StatusInternalServerError, serverErrorPage)
}

func (h *LinkHandler) renderNotFound(c echo.Context, code string) error {
	page, err := h.renderer.Render("notFound", map[string]string{
		"code": html.EscapeString(code),
	})
	if err != nil {
		h.logger.Error("can't render not found page: ", zap.Error(err))
		return c.String(http.StatusInternalServerError, serverErrorPage)
	}

	return c.HTML(http.StatusNotFound, page)
}

func (h *LinkHandler) renderPassword(c echo.Context, code, errMsg string) error {
	errSection := ""
	if errMsg != "" {
		errSection = fmt.Sprintf(`<div class="error-message">%s</div>`, html.EscapeString(errMsg))
	}

	page, err := h.renderer.Render("password", map[string]string{
		"code":       html.EscapeString(code),
		"errSection": errSection,
	})
	if err != nil {
		h.logger.Error("can't render password page: ", zap.Error(err))
		return c.String(http.StatusInternalServerError, serverErrorPage)
	}

	return c.HTML(http.StatusOK, page)
}

// Store will create a short link from the given request body
func (h *LinkHandler) Store(c echo.Context) error {
	createLink := new(domain.CreateLink)
	if err := c.Bind(createLink); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Error: err.Error()})
	}

	if err := c.Validate(createLink); err != nil {
		fields := err.(validator.ValidationErrors).Translate(h.validator.Translator)
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Error: "validation error", Fields: fields})
	}

	createLink.Creator = c.RealIP()
	createLink.UserAgent = c.Request().UserAgent()

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := h.linkUsecase.Store(ctx, *createLink)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err, h.logger), domain.ResponseError{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, result)
}

// List returns the caller's links, most recent first
func (h *LinkHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := h.linkUsecase.ListByCreator(ctx, c.RealIP())
	if err != nil {
		return c.JSON(domain.GetStatusCode(err, h.logger), domain.ResponseError{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// Delete removes one of the caller's links
func (h *LinkHandler) Delete(c echo.Context) error {
	code := c.Param("code")

	if err := h.validator.V.Var(code, "required,linkid,max=20"); err != nil {
		fields := err.(validator.ValidationErrors).Translate(h.validator.Translator)
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Error: "validation error", Fields: fields})
	}

	ctx := c.Request().Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := h.linkUsecase.Delete(ctx, code, c.RealIP()); err != nil {
		return c.JSON(domain.GetStatusCode(err, h.logger), domain.ResponseError{Error: err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}
