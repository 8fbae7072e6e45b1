package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/zyreny/zye/domain"
)

// Seed inserts data in databases for development purposes
func Seed(ctx context.Context, db *mongo.Database, content *gorm.DB) error {
	taipei := time.FixedZone("UTC+8", 8*60*60)
	timeNow := time.Now().In(taipei).Format("2006-01-02T15:04:05.000-07:00")
	expTime := time.Now().Add(time.Hour).In(taipei).Format("2006-01-02T15:04:05.000-07:00")

	links := []interface{}{
		domain.Link{
			Code:      "home",
			URL:       "https://zyreny.com/",
			CreatedAt: timeNow,
			Creator:   "127.0.0.1",
			UserAgent: "seed",
		},
		domain.Link{
			Code:      "google",
			URL:       "https://www.google.com",
			Exp:       expTime,
			CreatedAt: timeNow,
			Creator:   "127.0.0.1",
			UserAgent: "seed",
		},
		domain.Link{
			Code:      "docs",
			URL:       "https://go.dev/doc/",
			CreatedAt: timeNow,
			Creator:   "127.0.0.1",
			UserAgent: "seed",
			Meta: &domain.LinkMeta{
				Title:       "Go 文件",
				Description: "官方 Go 文件入口",
			},
		},
	}

	if _, err := db.Collection("link").InsertMany(ctx, links); err != nil {
		return err
	}

	news := []domain.News{
		{Category: "web-update", Title: "網站改版", Content: "全站樣式更新", CreatedAt: time.Now().In(taipei)},
		{Category: "new-proj", Title: "新作品上線", Content: "短網址服務公開測試", CreatedAt: time.Now().In(taipei)},
	}
	if err := content.WithContext(ctx).Create(&news).Error; err != nil {
		return err
	}

	projects := []domain.Project{
		{Name: "zyruls", Title: "Zyruls 縮網址", Desc: "把很長的連結縮短成幾個字", CreatedAt: time.Now().In(taipei)},
	}

	return content.WithContext(ctx).Create(&projects).Error
}
