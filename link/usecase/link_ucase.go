package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zyreny/zye/domain"
	"github.com/zyreny/zye/web/auth"
)

const maxLinksPerCreator = 75

const wrongPasswordMsg = "密碼錯誤，請重新輸入"

type linkUsecase struct {
	linkRepo       domain.LinkRepository
	preview        domain.PreviewGenerator
	baseURL        string
	contextTimeout time.Duration
	tracer         trace.Tracer
}

// NewLinkUsecase will create new an linkUsecase object representation of domain.LinkUsecase interface
func NewLinkUsecase(r domain.LinkRepository, p domain.PreviewGenerator, baseURL string, timeout time.Duration, tracer trace.Tracer) domain.LinkUsecase {
	return &linkUsecase{
		linkRepo:       r,
		preview:        p,
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		contextTimeout: timeout,
		tracer:         tracer,
	}
}

// Resolve decides the terminal outcome for one resolution request. Gates
// run in order, first match wins: lookup, expiry, password, crawler or
// explicit preview, redirect. Absent and expired codes are both reported
// as domain.ErrNotFound and are indistinguishable to the caller.
func (uc *linkUsecase) Resolve(c context.Context, code string, v domain.Visitor) (*domain.Resolution, error) {
	ctx, cancel := context.WithTimeout(c, uc.contextTimeout)
	defer cancel()

	ctx, span := uc.tracer.Start(
		ctx,
		"usecase Resolve",
		trace.WithAttributes(
			attribute.String("code", code)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	l, err := uc.activeLink(ctx, code)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if l.Password != "" {
		return &domain.Resolution{Action: domain.ActionPassword}, nil
	}

	return uc.finish(ctx, l, v), nil
}

// VerifyPassword re-runs the lookup and expiry gates, then compares the
// supplied secret's hash against the stored one. A mismatch, or a record
// that never required a password, re-renders the password gate with an
// inline message; it is a retry flow, not an error.
func (uc *linkUsecase) VerifyPassword(c context.Context, code, password string, v domain.Visitor) (*domain.Resolution, error) {
	ctx, cancel := context.WithTimeout(c, uc.contextTimeout)
	defer cancel()

	ctx, span := uc.tracer.Start(
		ctx,
		"usecase VerifyPassword",
		trace.WithAttributes(
			attribute.String("code", code)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	l, err := uc.activeLink(ctx, code)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if l.Password == "" || !auth.SecureCompare(auth.HashSecret(password), l.Password) {
		return &domain.Resolution{Action: domain.ActionPassword, ErrMsg: wrongPasswordMsg}, nil
	}

	return uc.finish(ctx, l, v), nil
}

// activeLink fetches the record and enforces expire-on-read: a lapsed
// record is deleted from the store and reported as not found.
func (uc *linkUsecase) activeLink(ctx context.Context, code string) (*domain.Link, error) {
	l, err := uc.linkRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if expired(l, time.Now()) {
		if err = uc.linkRepo.Delete(ctx, code); err != nil && !errors.Is(err, domain.ErrNoAffected) {
			return nil, err
		}
		return nil, fmt.Errorf("link %s lapsed: %w", code, domain.ErrNotFound)
	}

	return l, nil
}

func (uc *linkUsecase) finish(ctx context.Context, l *domain.Link, v domain.Visitor) *domain.Resolution {
	if wantsPreview(v) {
		return &domain.Resolution{
			Action: domain.ActionPreview,
			HTML:   uc.preview.Generate(ctx, l.URL, l.Meta, l.Code),
		}
	}

	return &domain.Resolution{Action: domain.ActionRedirect, Location: l.URL}
}

func (uc *linkUsecase) Store(c context.Context, createLink domain.CreateLink) (*domain.LinkInfo, error) {
	ctx, cancel := context.WithTimeout(c, uc.contextTimeout)
	defer cancel()

	ctx, span := uc.tracer.Start(
		ctx,
		"usecase Store",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	count, err := uc.linkRepo.CountByCreator(ctx, createLink.Creator)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if count >= maxLinksPerCreator {
		err = fmt.Errorf("creator %s reached the limit of %d links: %w", createLink.Creator, maxLinksPerCreator, domain.ErrForbidden)
		span.RecordError(err)
		return nil, err
	}

	code, err := uc.getLinkCode(ctx, createLink.Custom)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("code", code))

	l := &domain.Link{
		Code:      code,
		URL:       createLink.URL,
		CreatedAt: formatLocal(time.Now()),
		Creator:   createLink.Creator,
		UserAgent: createLink.UserAgent,
	}

	if createLink.Exp != nil && *createLink.Exp != "" {
		expTime, parseErr := time.Parse(time.RFC3339, *createLink.Exp)
		if parseErr != nil || !expTime.After(time.Now()) {
			err = fmt.Errorf("expiration %q is not a valid future timestamp: %w", *createLink.Exp, domain.ErrBadParamInput)
			span.RecordError(err)
			return nil, err
		}
		l.Exp = formatLocal(expTime)
	}

	if createLink.Password != nil && *createLink.Password != "" {
		l.Password = auth.HashSecret(*createLink.Password)
	}

	if createLink.Meta.HasValues() {
		l.Meta = createLink.Meta
	}

	err = uc.linkRepo.Store(ctx, l)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return uc.toInfo(l), nil
}

func (uc *linkUsecase) ListByCreator(c context.Context, creator string) ([]domain.LinkInfo, error) {
	ctx, cancel := context.WithTimeout(c, uc.contextTimeout)
	defer cancel()

	ctx, span := uc.tracer.Start(
		ctx,
		"usecase ListByCreator",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	links, err := uc.linkRepo.GetByCreator(ctx, creator)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	infos := make([]domain.LinkInfo, 0, len(links))
	for i := range links {
		infos = append(infos, *uc.toInfo(&links[i]))
	}

	return infos, nil
}

func (uc *linkUsecase) Delete(c context.Context, code, creator string) error {
	ctx, cancel := context.WithTimeout(c, uc.contextTimeout)
	defer cancel()

	ctx, span := uc.tracer.Start(
		ctx,
		"usecase Delete",
		trace.WithAttributes(
			attribute.String("code", code)),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	l, err := uc.linkRepo.GetByCode(ctx, code)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if l.Creator != creator {
		err = fmt.Errorf("link %s was created by someone else: %w", code, domain.ErrForbidden)
		span.RecordError(err)
		return err
	}

	err = uc.linkRepo.Delete(ctx, code)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// getLinkCode returns the custom code if it is free, otherwise generates a
// random one. Generation is capped: a pathological collision run surfaces
// as an error instead of retrying forever.
func (uc *linkUsecase) getLinkCode(ctx context.Context, custom *string) (string, error) {
	if custom != nil {
		_, err := uc.linkRepo.GetByCode(ctx, *custom)
		if err == nil {
			return "", fmt.Errorf("can't store link, code %q is taken: %w", *custom, domain.ErrConflict)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return "", err
		}

		return *custom, nil
	}

	for i := 0; i < maxCodeAttempts; i++ {
		src := rand.NewSource(time.Now().UnixNano())
		code := GenerateCode(codeLength, src)

		_, err := uc.linkRepo.GetByCode(ctx, code)
		if errors.Is(err, domain.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("can't generate a free code in %d attempts: %w", maxCodeAttempts, domain.ErrInternalServerError)
}

func (uc *linkUsecase) toInfo(l *domain.Link) *domain.LinkInfo {
	return &domain.LinkInfo{
		ShortURL:    uc.baseURL + "/" + l.Code,
		Code:        l.Code,
		URL:         l.URL,
		CreatedAt:   l.CreatedAt,
		HasPassword: l.Password != "",
		Exp:         l.Exp,
		Meta:        l.Meta,
	}
}
