package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/zyreny/zye/content/mock"
	"github.com/zyreny/zye/content/usecase"
	"github.com/zyreny/zye/domain"
	"github.com/zyreny/zye/tests"
)

var tracer = sdktrace.NewTracerProvider().Tracer("")

func TestContentUsecase_News(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	repository := mock.NewMockContentRepository(controller)
	uc := usecase.NewContentUsecase(repository, 10*time.Second, tracer)

	t.Run("list fills the localized category", func(t *testing.T) {
		stored := []domain.News{
			{ID: 2, Category: "web-update", Title: "網站改版"},
			{ID: 1, Category: "unknown-category", Title: "其他"},
		}
		repository.EXPECT().ListNews(gomock.Any(), 5, 0).Return(stored, nil)

		result, err := uc.ListNews(context.Background(), 5, 0)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "網站更新", result[0].CategoryZH)
		assert.Empty(t, result[1].CategoryZH)
	})

	t.Run("list repository error", func(t *testing.T) {
		repository.EXPECT().ListNews(gomock.Any(), 0, 0).Return(nil, domain.ErrInternalServerError)

		result, err := uc.ListNews(context.Background(), 0, 0)

		assert.ErrorIs(t, err, domain.ErrInternalServerError)
		assert.Nil(t, result)
	})

	t.Run("add stamps the creation time", func(t *testing.T) {
		tCreate := tests.NewCreateNews()
		repository.EXPECT().StoreNews(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *domain.News) error {
			assert.Equal(t, tCreate.Category, n.Category)
			assert.Equal(t, tCreate.Title, n.Title)
			assert.Equal(t, tCreate.Content, n.Content)
			assert.WithinDuration(t, time.Now(), n.CreatedAt, time.Minute)
			_, offset := n.CreatedAt.Zone()
			assert.Equal(t, 8*60*60, offset)
			return nil
		})

		err := uc.AddNews(context.Background(), tCreate)

		assert.NoError(t, err)
	})

	t.Run("delete latest entry", func(t *testing.T) {
		repository.EXPECT().DeleteNews(gomock.Any(), gomock.Nil()).Return(nil)

		err := uc.DeleteNews(context.Background(), nil)

		assert.NoError(t, err)
	})

	t.Run("delete missing entry", func(t *testing.T) {
		id := uint(42)
		repository.EXPECT().DeleteNews(gomock.Any(), &id).Return(domain.ErrNoAffected)

		err := uc.DeleteNews(context.Background(), &id)

		assert.ErrorIs(t, err, domain.ErrNoAffected)
	})
}

func TestContentUsecase_Projects(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	repository := mock.NewMockContentRepository(controller)
	uc := usecase.NewContentUsecase(repository, 10*time.Second, tracer)

	t.Run("list", func(t *testing.T) {
		stored := []domain.Project{{ID: 1, Name: "zyruls"}}
		repository.EXPECT().ListProjects(gomock.Any(), 3).Return(stored, nil)

		result, err := uc.ListProjects(context.Background(), 3)

		require.NoError(t, err)
		assert.EqualValues(t, stored, result)
	})

	t.Run("add maps the description field", func(t *testing.T) {
		tCreate := tests.NewCreateProject()
		repository.EXPECT().StoreProject(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Project) error {
			assert.Equal(t, tCreate.Name, p.Name)
			assert.Equal(t, tCreate.Description, p.Desc)
			return nil
		})

		err := uc.AddProject(context.Background(), tCreate)

		assert.NoError(t, err)
	})

	t.Run("delete by id", func(t *testing.T) {
		id := uint(7)
		repository.EXPECT().DeleteProject(gomock.Any(), &id).Return(nil)

		err := uc.DeleteProject(context.Background(), &id)

		assert.NoError(t, err)
	})
}
