package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/zyreny/zye/domain"
)

const linkCollection = "link"

type mongoLinkRepository struct {
	Conn   *mongo.Database
	logger *zap.Logger
	tracer trace.Tracer
}

// NewMongoLinkRepository will create an object that represent the domain.LinkRepository interface
func NewMongoLinkRepository(c *mongo.Client, db string, logger *zap.Logger, tracer trace.Tracer) domain.LinkRepository {
	return &mongoLinkRepository{
		Conn:   c.Database(db),
		logger: logger,
		tracer: tracer,
	}
}

func (m *mongoLinkRepository) fetch(ctx context.Context, command interface{}) ([]domain.Link, error) {
	ctx, span := m.tracer.Start(
		ctx,
		"repository fetch",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	cur, err := m.Conn.RunCommandCursor(ctx, command)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("can't execute command: %w", err)
	}

	defer func(ctx context.Context) {
		err = cur.Close(ctx)
		if err != nil {
			m.logger.Error("can't close cursor: ", zap.Error(err))
		}
	}(ctx)

	result := make([]domain.Link, 0)

	for cur.Next(ctx) {
		elem := new(domain.Link)
		if err = cur.Decode(elem); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("can't unmarshal document into Link: %w", err)
		}

		result = append(result, *elem)
	}

	if err = cur.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("link cursor error: %w", err)
	}

	return result, nil
}

func (m *mongoLinkRepository) GetByCode(ctx context.Context, code string) (*domain.Link, error) {
	ctx, span := m.tracer.Start(
		ctx,
		"repository GetByCode",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("code", code)),
	)
	defer span.End()

	command := bson.D{
		primitive.E{Key: "find", Value: linkCollection},
		primitive.E{Key: "limit", Value: 1},
		primitive.E{Key: "filter", Value: bson.D{primitive.E{Key: "_id", Value: code}}},
	}

	list, err := m.fetch(ctx, command)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("link get error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	if len(list) == 0 {
		span.RecordError(domain.ErrNotFound)
		return nil, fmt.Errorf("link was not found: %w", domain.ErrNotFound)
	}

	return &list[0], nil
}

func (m *mongoLinkRepository) GetByCreator(ctx context.Context, creator string) ([]domain.Link, error) {
	ctx, span := m.tracer.Start(
		ctx,
		"repository GetByCreator",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("creator", creator)),
	)
	defer span.End()

	command := bson.D{
		primitive.E{Key: "find", Value: linkCollection},
		primitive.E{Key: "filter", Value: bson.D{primitive.E{Key: "creator", Value: creator}}},
		primitive.E{Key: "sort", Value: bson.D{primitive.E{Key: "created_at", Value: -1}}},
	}

	list, err := m.fetch(ctx, command)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("link list error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return list, nil
}

func (m *mongoLinkRepository) CountByCreator(ctx context.Context, creator string) (int64, error) {
	ctx, span := m.tracer.Start(
		ctx,
		"repository CountByCreator",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("creator", creator)),
	)
	defer span.End()

	filter := bson.D{
		primitive.E{Key: "creator", Value: creator},
	}

	count, err := m.Conn.Collection(linkCollection).CountDocuments(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("link count error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return count, nil
}

func (m *mongoLinkRepository) Store(ctx context.Context, l *domain.Link) error {
	ctx, span := m.tracer.Start(
		ctx,
		"repository Store",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("code", l.Code)),
	)
	defer span.End()

	_, err := m.Conn.Collection(linkCollection).InsertOne(ctx, l)
	if err != nil {
		span.RecordError(err)
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("link store error: %w", domain.ErrConflict)
		}
		return fmt.Errorf("link store error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	return nil
}

func (m *mongoLinkRepository) Delete(ctx context.Context, code string) error {
	ctx, span := m.tracer.Start(
		ctx,
		"repository Delete",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("code", code)),
	)
	defer span.End()

	filter := bson.D{
		primitive.E{Key: "_id", Value: code},
	}

	delRes, err := m.Conn.Collection(linkCollection).DeleteOne(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("link delete error: %w: %s", domain.ErrInternalServerError, err.Error())
	}

	if delRes.DeletedCount == 0 {
		err = fmt.Errorf("link was not deleted: %w", domain.ErrNoAffected)
		span.RecordError(err)
		return err
	}

	return nil
}
