package domain

import (
	"context"
)

// Link represents a stored short link, keyed by its code
type Link struct {
	Code      string    `json:"code" bson:"_id"`
	URL       string    `json:"url" bson:"url"`
	Password  string    `json:"-" bson:"password,omitempty"`
	Exp       string    `json:"exp,omitempty" bson:"exp,omitempty"`
	Meta      *LinkMeta `json:"meta,omitempty" bson:"meta,omitempty"`
	CreatedAt string    `json:"created_at" bson:"created_at"`
	Creator   string    `json:"-" bson:"creator"`
	UserAgent string    `json:"-" bson:"user_agent"`
}

// LinkMeta holds operator-supplied social preview overrides
type LinkMeta struct {
	Title       string `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,max=100"`
	Description string `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=300"`
	Image       string `json:"image,omitempty" bson:"image,omitempty" validate:"omitempty,url"`
}

// HasValues reports whether any preview override is set
func (m *LinkMeta) HasValues() bool {
	return m != nil && (m.Title != "" || m.Description != "" || m.Image != "")
}

// CreateLink represents data to create a new short link
type CreateLink struct {
	URL       string    `json:"url" validate:"required,url"`
	Custom    *string   `json:"custom" validate:"omitempty,linkid,min=3,max=20"`
	Password  *string   `json:"password" validate:"omitempty,max=100"`
	Exp       *string   `json:"exp"`
	Meta      *LinkMeta `json:"meta"`
	Creator   string    `json:"-"`
	UserAgent string    `json:"-"`
}

// LinkInfo is the creator-facing view of a link, without the password hash
type LinkInfo struct {
	ShortURL    string    `json:"short_url,omitempty"`
	Code        string    `json:"code"`
	URL         string    `json:"url"`
	CreatedAt   string    `json:"created_at"`
	HasPassword bool      `json:"has_password"`
	Exp         string    `json:"exp,omitempty"`
	Meta        *LinkMeta `json:"meta,omitempty"`
}

// Visitor carries the request signals the resolution pipeline inspects
type Visitor struct {
	UserAgent string
	Preview   bool
}

// ResolveAction is the terminal outcome of a resolution request
type ResolveAction int

const (
	// ActionRedirect sends the visitor to the destination URL
	ActionRedirect ResolveAction = iota
	// ActionPassword renders the password entry page
	ActionPassword
	// ActionPreview renders the social preview page
	ActionPreview
)

// Resolution is the decision produced for one resolution request
type Resolution struct {
	Action   ResolveAction
	Location string
	HTML     string
	ErrMsg   string
}

// LinkUsecase represents the link's usecases
type LinkUsecase interface {
	Resolve(ctx context.Context, code string, v Visitor) (*Resolution, error)
	VerifyPassword(ctx context.Context, code, password string, v Visitor) (*Resolution, error)
	Store(ctx context.Context, createLink CreateLink) (*LinkInfo, error)
	ListByCreator(ctx context.Context, creator string) ([]LinkInfo, error)
	Delete(ctx context.Context, code, creator string) error
}

// LinkRepository represents the link's storage contract
type LinkRepository interface {
	GetByCode(ctx context.Context, code string) (*Link, error)
	Store(ctx context.Context, l *Link) error
	Delete(ctx context.Context, code string) error
	GetByCreator(ctx context.Context, creator string) ([]Link, error)
	CountByCreator(ctx context.Context, creator string) (int64, error)
}

// PreviewGenerator produces the crawler-facing preview page for a link.
// Implementations never fail: fetch errors degrade to default metadata.
type PreviewGenerator interface {
	Generate(ctx context.Context, destURL string, meta *LinkMeta, code string) string
}
