package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zyreny/zye/domain"
)

type sqliteContentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
	tracer trace.Tracer
}

// NewSQLiteContentRepository will create an object that represent the domain.ContentRepository interface
func NewSQLiteContentRepository(db *gorm.DB, logger *zap.Logger, tracer trace.Tracer) domain.ContentRepository {
	return &sqliteContentRepository{
		db:     db,
		logger: logger,
		tracer: tracer,
	}
}

func (r *sqliteContentRepository) ListNews(ctx context.Context, limit, days int) ([]domain.News, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"repository ListNews",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.Int("limit", limit),
			attribute.Int("days", days)),
	)
	defer span.End()

	q := r.db.WithContext(ctx).Order("created_at DESC")
	if days > 0 {
		q = q.Where("created_at >= ?", time.Now().AddDate(0, 0, -days))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	news := make([]domain.News, 0)
	if err := q.Find(&news).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("news list error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return news, nil
}

func (r *sqliteContentRepository) StoreNews(ctx context.Context, n *domain.News) error {
	ctx, span := r.tracer.Start(
		ctx,
		"repository StoreNews",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("news store error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return nil
}

func (r *sqliteContentRepository) DeleteNews(ctx context.Context, id *uint) error {
	ctx, span := r.tracer.Start(
		ctx,
		"repository DeleteNews",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	target, err := r.deleteTarget(ctx, span, &domain.News{}, id)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&domain.News{}, target)
	if res.Error != nil {
		span.RecordError(res.Error)
		return fmt.Errorf("news delete error: %w: %s", domain.ErrInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		span.RecordError(domain.ErrNoAffected)
		return fmt.Errorf("news entry was not deleted: %w", domain.ErrNoAffected)
	}

	return nil
}

func (r *sqliteContentRepository) ListProjects(ctx context.Context, limit int) ([]domain.Project, error) {
	ctx, span := r.tracer.Start(
		ctx,
		"repository ListProjects",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.Int("limit", limit)),
	)
	defer span.End()

	q := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	projects := make([]domain.Project, 0)
	if err := q.Find(&projects).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("project list error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return projects, nil
}

func (r *sqliteContentRepository) StoreProject(ctx context.Context, p *domain.Project) error {
	ctx, span := r.tracer.Start(
		ctx,
		"repository StoreProject",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("project store error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return nil
}

func (r *sqliteContentRepository) DeleteProject(ctx context.Context, id *uint) error {
	ctx, span := r.tracer.Start(
		ctx,
		"repository DeleteProject",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	target, err := r.deleteTarget(ctx, span, &domain.Project{}, id)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&domain.Project{}, target)
	if res.Error != nil {
		span.RecordError(res.Error)
		return fmt.Errorf("project delete error: %w: %s", domain.ErrInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		span.RecordError(domain.ErrNoAffected)
		return fmt.Errorf("project was not deleted: %w", domain.ErrNoAffected)
	}

	return nil
}

// deleteTarget resolves the row to delete: the given id, or the most recent
// entry when no id was supplied.
func (r *sqliteContentRepository) deleteTarget(ctx context.Context, span trace.Span, model interface{}, id *uint) (uint, error) {
	if id != nil {
		return *id, nil
	}

	var latest struct{ ID uint }
	err := r.db.WithContext(ctx).Model(model).Order("id DESC").Select("id").First(&latest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.RecordError(domain.ErrNoAffected)
			return 0, fmt.Errorf("nothing to delete: %w", domain.ErrNoAffected)
		}
		span.RecordError(err)
		return 0, fmt.Errorf("latest entry lookup error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return latest.ID, nil
}
