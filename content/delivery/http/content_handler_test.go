package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	contentHttp "github.com/zyreny/zye/content/delivery/http"
	"github.com/zyreny/zye/content/mock"
	"github.com/zyreny/zye/domain"
	"github.com/zyreny/zye/tests"
	"github.com/zyreny/zye/web"
)

func newHandler(t *testing.T, uc domain.ContentUsecase) (*contentHttp.ContentHandler, *echo.Echo) {
	t.Helper()

	tracer := sdktrace.NewTracerProvider().Tracer("")
	v, err := web.NewAppValidator()
	require.NoError(t, err)

	handler := contentHttp.NewContentHandler(uc, v, zap.NewNop(), tracer)

	e := echo.New()
	e.Validator = v

	return handler, e
}

func TestContentHandler_News(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()
	uc := mock.NewMockContentUsecase(controller)
	handler, e := newHandler(t, uc)

	t.Run("list with query window", func(t *testing.T) {
		tNews := []domain.News{{ID: 1, Category: "web-update", Title: "網站改版", CategoryZH: "網站更新"}}
		uc.EXPECT().ListNews(gomock.Any(), 5, 30).Return(tNews, nil)

		req := httptest.NewRequest(echo.GET, "/data/news?limit=5&days=30", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.ListNews(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body []domain.News
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, "網站更新", body[0].CategoryZH)
	})

	t.Run("list rejects a negative limit", func(t *testing.T) {
		req := httptest.NewRequest(echo.GET, "/data/news?limit=-1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.ListNews(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("add", func(t *testing.T) {
		tCreate := tests.NewCreateNews()
		uc.EXPECT().AddNews(gomock.Any(), tCreate).Return(nil)

		b, err := json.Marshal(tCreate)
		require.NoError(t, err)
		req := httptest.NewRequest(echo.POST, "/data/news", bytes.NewBuffer(b))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.AddNews(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("add validation error", func(t *testing.T) {
		tCreate := tests.NewCreateNews()
		tCreate.Title = ""

		b, err := json.Marshal(tCreate)
		require.NoError(t, err)
		req := httptest.NewRequest(echo.POST, "/data/news", bytes.NewBuffer(b))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.AddNews(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := new(domain.ResponseError)
		require.NoError(t, json.NewDecoder(rec.Body).Decode(body))
		assert.Equal(t, "validation error", body.Error)
	})

	t.Run("delete latest", func(t *testing.T) {
		uc.EXPECT().DeleteNews(gomock.Any(), gomock.Nil()).Return(nil)

		req := httptest.NewRequest(echo.DELETE, "/data/news", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.DeleteNews(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("delete by id", func(t *testing.T) {
		id := uint(3)
		uc.EXPECT().DeleteNews(gomock.Any(), &id).Return(nil)

		req := httptest.NewRequest(echo.DELETE, "/data/news/3", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/data/news/:id")
		c.SetParamNames("id")
		c.SetParamValues("3")

		require.NoError(t, handler.DeleteNews(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("delete invalid id", func(t *testing.T) {
		req := httptest.NewRequest(echo.DELETE, "/data/news/abc", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/data/news/:id")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, handler.DeleteNews(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete empty table", func(t *testing.T) {
		uc.EXPECT().DeleteNews(gomock.Any(), gomock.Nil()).Return(domain.ErrNoAffected)

		req := httptest.NewRequest(echo.DELETE, "/data/news", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.DeleteNews(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestContentHandler_Projects(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()
	uc := mock.NewMockContentUsecase(controller)
	handler, e := newHandler(t, uc)

	t.Run("list", func(t *testing.T) {
		tProjects := []domain.Project{{ID: 1, Name: "zyruls", Title: "Zyruls 縮網址"}}
		uc.EXPECT().ListProjects(gomock.Any(), 0).Return(tProjects, nil)

		req := httptest.NewRequest(echo.GET, "/data/projs", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.ListProjects(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body []domain.Project
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.EqualValues(t, tProjects, body)
	})

	t.Run("add", func(t *testing.T) {
		tCreate := tests.NewCreateProject()
		uc.EXPECT().AddProject(gomock.Any(), tCreate).Return(nil)

		b, err := json.Marshal(tCreate)
		require.NoError(t, err)
		req := httptest.NewRequest(echo.POST, "/data/projs", bytes.NewBuffer(b))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.AddProject(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("delete by id", func(t *testing.T) {
		id := uint(5)
		uc.EXPECT().DeleteProject(gomock.Any(), &id).Return(nil)

		req := httptest.NewRequest(echo.DELETE, "/data/projs/5", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/data/projs/:id")
		c.SetParamNames("id")
		c.SetParamValues("5")

		require.NoError(t, handler.DeleteProject(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
