package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/zyreny/zye/domain"
)

// taipei is the service's fixed zone (UTC+8), used for entry timestamps
var taipei = time.FixedZone("UTC+8", 8*60*60)

// categoryZH maps news categories to their zh-TW labels. Built once, never
// mutated after init.
var categoryZH = map[string]string{
	"web-update":  "網站更新",
	"proj-update": "專案更新",
	"new-proj":    "新作品",
}

type contentUsecase struct {
	contentRepo    domain.ContentRepository
	contextTimeout time.Duration
	tracer         trace.Tracer
}

// NewContentUsecase will create new an contentUsecase object representation of domain.ContentUsecase interface
func NewContentUsecase(r domain.ContentRepository, timeout time.Duration, tracer trace.Tracer) domain.ContentUsecase {
	return &contentUsecase{
		contentRepo:    r,
		contextTimeout: timeout,
		tracer:         tracer,
	}
}

func (uc *contentUsecase) ListNews(c context.Context, limit, days int) ([]domain.News, error) {
	ctx, cancel := context.WithTimeout(c, uc.contextTimeout)
	defer cancel()

	ctx, span := uc.tracer.Start(
		ctx,
		"usecase ListNews",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	news, err := uc.contentRepo.ListNews(ctx, limit, days)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	for i := range news {
		news[i].CategoryZH = categoryZH[news[i].Category]
	}

	return news, nil
}

func (uc *contentUsecase) AddNews(c context.Context, cn domain.CreateNews) error {
	ctx, cancel := context.WithTimeout(c, uc.contextTimeout)
	defer cancel()

	ctx, span := uc.tracer.Start(
		ctx,
		"usecase AddNews",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	n := &domain.News{
		Category:  cn.Category,
		Title:     cn.Title,
		Content:   cn.Content,
		CreatedAt: time.Now().In(taipei),
	}

	err := uc.contentRepo.StoreNews(ctx, n)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (uc *contentUsecase) DeleteNews(c context.Context, id *uint) error {
	ctx, cancel := context.WithTimeout(c, uc.contextTimeout)
	defer cancel()

	ctx, span := uc.tracer.Start(
		ctx,
		"usecase DeleteNews",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	err := uc.contentRepo.DeleteNews(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (uc *contentUsecase) ListProjects(c context.Context, limit int) ([]domain.Project, error) {
	ctx, cancel := context.WithTimeout(c, uc.contextTimeout)
	defer cancel()

	ctx, span := uc.tracer.Start(
		ctx,
		"usecase ListProjects",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	projects, err := uc.contentRepo.ListProjects(ctx, limit)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return projects, nil
}

func (uc *contentUsecase) AddProject(c context.Context, cp domain.CreateProject) error {
	ctx, cancel := context.WithTimeout(c, uc.contextTimeout)
	defer cancel()

	ctx, span := uc.tracer.Start(
		ctx,
		"usecase AddProject",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	p := &domain.Project{
		Name:      cp.Name,
		Title:     cp.Title,
		Desc:      cp.Description,
		CreatedAt: time.Now().In(taipei),
	}

	err := uc.contentRepo.StoreProject(ctx, p)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (uc *contentUsecase) DeleteProject(c context.Context, id *uint) error {
	ctx, cancel := context.WithTimeout(c, uc.contextTimeout)
	defer cancel()

	ctx, span := uc.tracer.Start(
		ctx,
		"usecase DeleteProject",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	err := uc.contentRepo.DeleteProject(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
