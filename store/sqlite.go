package store

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/zyreny/zye/domain"
)

// SQLiteConfig stores the content database configuration
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// OpenSQLite opens the content database and keeps its schema current
func OpenSQLite(cfg SQLiteConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database with path %s error: %w", cfg.Path, err)
	}

	if err = db.AutoMigrate(&domain.News{}, &domain.Project{}); err != nil {
		return nil, fmt.Errorf("migrating content tables: %w", err)
	}

	return db, nil
}
