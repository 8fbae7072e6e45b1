package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/zyreny/zye/content/repository"
	"github.com/zyreny/zye/domain"
	"github.com/zyreny/zye/store"
)

var tracer = sdktrace.NewTracerProvider().Tracer("")
var noopCtx = context.Background()

func newRepository(t *testing.T) domain.ContentRepository {
	t.Helper()

	db, err := store.OpenSQLite(store.SQLiteConfig{Path: "file::memory:"})
	require.NoError(t, err)

	return repository.NewSQLiteContentRepository(db, zap.NewNop(), tracer)
}

func TestSQLiteContentRepository_News(t *testing.T) {
	r := newRepository(t)

	old := &domain.News{Category: "web-update", Title: "舊消息", Content: "內容", CreatedAt: time.Now().AddDate(0, 0, -10)}
	recent := &domain.News{Category: "new-proj", Title: "新消息", Content: "內容", CreatedAt: time.Now()}
	require.NoError(t, r.StoreNews(noopCtx, old))
	require.NoError(t, r.StoreNews(noopCtx, recent))

	t.Run("list newest first", func(t *testing.T) {
		news, err := r.ListNews(noopCtx, 0, 0)
		require.NoError(t, err)
		require.Len(t, news, 2)
		assert.Equal(t, recent.Title, news[0].Title)
		assert.Equal(t, old.Title, news[1].Title)
	})

	t.Run("days window drops old entries", func(t *testing.T) {
		news, err := r.ListNews(noopCtx, 0, 7)
		require.NoError(t, err)
		require.Len(t, news, 1)
		assert.Equal(t, recent.Title, news[0].Title)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		news, err := r.ListNews(noopCtx, 1, 0)
		require.NoError(t, err)
		assert.Len(t, news, 1)
	})

	t.Run("delete by id", func(t *testing.T) {
		err := r.DeleteNews(noopCtx, &old.ID)
		require.NoError(t, err)

		news, err := r.ListNews(noopCtx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, news, 1)
	})

	t.Run("delete missing id", func(t *testing.T) {
		missing := uint(9999)
		err := r.DeleteNews(noopCtx, &missing)
		assert.ErrorIs(t, err, domain.ErrNoAffected)
	})

	t.Run("delete without id removes the latest", func(t *testing.T) {
		err := r.DeleteNews(noopCtx, nil)
		require.NoError(t, err)

		news, err := r.ListNews(noopCtx, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, news)
	})

	t.Run("delete on empty table", func(t *testing.T) {
		err := r.DeleteNews(noopCtx, nil)
		assert.ErrorIs(t, err, domain.ErrNoAffected)
	})
}

func TestSQLiteContentRepository_Projects(t *testing.T) {
	r := newRepository(t)

	first := &domain.Project{Name: "zyruls", Title: "Zyruls 縮網址", Desc: "縮短連結", CreatedAt: time.Now()}
	second := &domain.Project{Name: "zyesite", Title: "個人網站", Desc: "作品集", CreatedAt: time.Now()}
	require.NoError(t, r.StoreProject(noopCtx, first))
	require.NoError(t, r.StoreProject(noopCtx, second))

	t.Run("list newest first", func(t *testing.T) {
		projects, err := r.ListProjects(noopCtx, 0)
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, second.Name, projects[0].Name)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		projects, err := r.ListProjects(noopCtx, 1)
		require.NoError(t, err)
		assert.Len(t, projects, 1)
	})

	t.Run("delete without id removes the latest", func(t *testing.T) {
		err := r.DeleteProject(noopCtx, nil)
		require.NoError(t, err)

		projects, err := r.ListProjects(noopCtx, 0)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, first.Name, projects[0].Name)
	})
}
