package domain

import (
	"context"
	"time"
)

// News represents one entry of the news table
type News struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Category   string    `json:"category" gorm:"index"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	CategoryZH string    `json:"categoryZH,omitempty" gorm:"-"`
}

// Project represents one entry of the projects table
type Project struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateNews represents data to add a news entry
type CreateNews struct {
	Category string `json:"category" validate:"required,max=50"`
	Title    string `json:"title" validate:"required,max=100"`
	Content  string `json:"content" validate:"required"`
}

// CreateProject represents data to add a project entry
type CreateProject struct {
	Name        string `json:"name" validate:"required,max=50"`
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=300"`
}

// ContentUsecase represents the content tables' usecases
type ContentUsecase interface {
	ListNews(ctx context.Context, limit, days int) ([]News, error)
	AddNews(ctx context.Context, cn CreateNews) error
	DeleteNews(ctx context.Context, id *uint) error
	ListProjects(ctx context.Context, limit int) ([]Project, error)
	AddProject(ctx context.Context, cp CreateProject) error
	DeleteProject(ctx context.Context, id *uint) error
}

// ContentRepository represents the content tables' storage contract
type ContentRepository interface {
	ListNews(ctx context.Context, limit, days int) ([]News, error)
	StoreNews(ctx context.Context, n *News) error
	DeleteNews(ctx context.Context, id *uint) error
	ListProjects(ctx context.Context, limit int) ([]Project, error)
	StoreProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id *uint) error
}
