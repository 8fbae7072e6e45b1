package tests

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/zyreny/zye/domain"
	"github.com/zyreny/zye/web/auth"
)

var taipei = time.FixedZone("UTC+8", 8*60*60)

// StringPointer returns pointer of a string
func StringPointer(s string) *string {
	return &s
}

// LocalTimestamp formats t the way stored links record time
func LocalTimestamp(t time.Time) string {
	return t.In(taipei).Format("2006-01-02T15:04:05.000-07:00")
}

// NewLink creates instance of Link model
func NewLink() *domain.Link {
	return &domain.Link{
		Code:      "test123",
		URL:       "http://www.example.org",
		CreatedAt: LocalTimestamp(time.Now()),
		Creator:   "192.0.2.1",
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64)",
	}
}

// NewProtectedLink creates instance of Link model guarded by "password"
func NewProtectedLink() *domain.Link {
	l := NewLink()
	l.Password = auth.HashSecret("password")
	return l
}

// NewExpiredLink creates instance of Link model that lapsed an hour ago
func NewExpiredLink() *domain.Link {
	l := NewLink()
	l.Exp = LocalTimestamp(time.Now().Add(-time.Hour))
	return l
}

// NewLinkBsonD creates bson representation of a Link model
func NewLinkBsonD(l *domain.Link) bson.D {
	d := bson.D{
		{Key: "_id", Value: l.Code},
		{Key: "url", Value: l.URL},
	}
	if l.Password != "" {
		d = append(d, bson.E{Key: "password", Value: l.Password})
	}
	if l.Exp != "" {
		d = append(d, bson.E{Key: "exp", Value: l.Exp})
	}
	d = append(d,
		bson.E{Key: "created_at", Value: l.CreatedAt},
		bson.E{Key: "creator", Value: l.Creator},
		bson.E{Key: "user_agent", Value: l.UserAgent},
	)
	return d
}

// NewCreateLink creates instance of CreateLink model
func NewCreateLink() domain.CreateLink {
	return domain.CreateLink{
		URL:       "http://www.example.org",
		Custom:    StringPointer("test123"),
		Creator:   "192.0.2.1",
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64)",
	}
}

// NewCreateNews creates instance of CreateNews model
func NewCreateNews() domain.CreateNews {
	return domain.CreateNews{
		Category: "web-update",
		Title:    "網站改版",
		Content:  "全站樣式更新",
	}
}

// NewCreateProject creates instance of CreateProject model
func NewCreateProject() domain.CreateProject {
	return domain.CreateProject{
		Name:        "zyruls",
		Title:       "Zyruls 縮網址",
		Description: "把很長的連結縮短成幾個字",
	}
}
